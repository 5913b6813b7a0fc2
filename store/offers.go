package store

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// FallbackOfferURL seeds the pool when no links are configured, so the
// bot never starts with nothing to hand out.
const FallbackOfferURL = "https://example.com/test-offer"

// OfferStore reads and seeds the offer pool.
type OfferStore struct {
	db *gorm.DB
}

func NewOfferStore(s *Store) *OfferStore {
	return &OfferStore{db: s.DB}
}

// SeedIfEmpty inserts one offer per URL, preserving order, if the pool
// has no offers yet. An empty list seeds the fallback placeholder.
// Safe to call on every start.
func (o *OfferStore) SeedIfEmpty(urls []string) error {
	n, err := o.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if len(urls) == 0 {
		log.Println("REF_LINKS is empty, seeding fallback offer")
		urls = []string{FallbackOfferURL}
	}

	offers := make([]model.Offer, 0, len(urls))
	for _, u := range urls {
		offer, err := model.NewOffer(u)
		if err != nil {
			return err
		}
		offers = append(offers, offer)
	}

	if err := o.db.Create(&offers).Error; err != nil {
		return fmt.Errorf("seed offers error: %v", err)
	}
	log.Printf("Seeded %d offers", len(offers))
	return nil
}

// All returns the pool in id order, which is the round-robin order.
func (o *OfferStore) All() ([]model.Offer, error) {
	var offers []model.Offer
	if err := o.db.Order("id ASC").Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("list offers error: %v", err)
	}
	return offers, nil
}

func (o *OfferStore) ByID(id int64) (model.Offer, error) {
	var offer model.Offer
	err := o.db.First(&offer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Offer{}, ErrOfferNotFound
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("load offer error: %v", err)
	}
	return offer, nil
}

func (o *OfferStore) Count() (int64, error) {
	var n int64
	if err := o.db.Model(&model.Offer{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count offers error: %v", err)
	}
	return n, nil
}
