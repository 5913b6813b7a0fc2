package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// AssignmentLedger hands each user a fixed offer. The first request for
// a user picks offer index (bound users) mod (offer count) and persists
// the binding; every later request returns the same offer.
type AssignmentLedger struct {
	db     *gorm.DB
	offers *OfferStore
}

func NewAssignmentLedger(s *Store, offers *OfferStore) *AssignmentLedger {
	return &AssignmentLedger{db: s.DB, offers: offers}
}

// Assign returns the offer bound to tgID, creating the binding on first
// contact. The count and the insert run in one transaction, so a writer
// observes them atomically. Concurrent first calls for the same user are
// safe: the losing insert hits the primary key, does nothing, and the
// winner's row is read back instead.
func (a *AssignmentLedger) Assign(tgID string) (model.Offer, error) {
	var binding model.UserBinding
	err := a.db.First(&binding, "tg_id = ?", tgID).Error
	if err == nil {
		return a.offers.ByID(binding.OfferID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Offer{}, fmt.Errorf("load binding error: %v", err)
	}

	var offer model.Offer
	err = a.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.UserBinding{}).Count(&n).Error; err != nil {
			return fmt.Errorf("count users error: %v", err)
		}

		var offers []model.Offer
		if err := tx.Order("id ASC").Find(&offers).Error; err != nil {
			return fmt.Errorf("list offers error: %v", err)
		}
		if len(offers) == 0 {
			return ErrNoOffers
		}

		offer = offers[n%int64(len(offers))]
		b, err := model.NewUserBinding(tgID, offer.ID)
		if err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&b)
		if res.Error != nil {
			return fmt.Errorf("create binding error: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost the race; the winner's offer stands.
			if err := tx.First(&b, "tg_id = ?", tgID).Error; err != nil {
				return fmt.Errorf("reload binding error: %v", err)
			}
			if err := tx.First(&offer, b.OfferID).Error; err != nil {
				return fmt.Errorf("load offer error: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}
