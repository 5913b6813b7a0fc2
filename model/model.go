package model

import (
	"fmt"
	"time"
)

// Offer is a trackable outbound URL the bot rotates new users onto.
// Offers are seeded once at startup and never change; id order defines
// the round-robin order.
type Offer struct {
	ID  int64  `gorm:"primaryKey"`
	URL string `gorm:"not null"`
}

func NewOffer(url string) (Offer, error) {
	if url == "" {
		return Offer{}, fmt.Errorf("offer url must not be empty")
	}
	return Offer{URL: url}, nil
}

// UserBinding pins a Telegram user to the offer they were first shown.
// The bound offer never changes for the lifetime of the row.
type UserBinding struct {
	TgID      string    `gorm:"primaryKey;column:tg_id"`
	OfferID   int64     `gorm:"column:offer_id"`
	FirstSeen time.Time `gorm:"column:first_seen;autoCreateTime"`
}

func (UserBinding) TableName() string { return "users" }

func NewUserBinding(tgID string, offerID int64) (UserBinding, error) {
	if tgID == "" {
		return UserBinding{}, fmt.Errorf("binding tg_id must not be empty")
	}
	if offerID < 1 {
		return UserBinding{}, fmt.Errorf("binding offer_id must be positive, got %d", offerID)
	}
	return UserBinding{TgID: tgID, OfferID: offerID}, nil
}

// ClickEvent is one resolved redirect. Append-only; tg_id may be the
// "unknown" placeholder when the redirect carried no user parameter.
type ClickEvent struct {
	ID      int64     `gorm:"primaryKey"`
	TgID    string    `gorm:"column:tg_id"`
	OfferID int64     `gorm:"column:offer_id"`
	TS      time.Time `gorm:"column:ts;autoCreateTime"`
}

func (ClickEvent) TableName() string { return "clicks" }
