package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// ClickLedger appends click events and counts them. Tracking is
// best-effort: the user id is opaque and never checked, the offer id is
// validated by the caller before recording.
type ClickLedger struct {
	db *gorm.DB
}

func NewClickLedger(s *Store) *ClickLedger {
	return &ClickLedger{db: s.DB}
}

func (c *ClickLedger) Record(tgID string, offerID int64) error {
	click := model.ClickEvent{TgID: tgID, OfferID: offerID}
	if err := c.db.Create(&click).Error; err != nil {
		return fmt.Errorf("record click error: %v", err)
	}
	return nil
}

func (c *ClickLedger) CountAll() (int64, error) {
	var n int64
	if err := c.db.Model(&model.ClickEvent{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count clicks error: %v", err)
	}
	return n, nil
}

// CountByOffer groups clicks by offer. Offers with no clicks are absent
// from the map; the aggregator treats absence as zero.
func (c *ClickLedger) CountByOffer() (map[int64]int64, error) {
	type row struct {
		OfferID int64
		N       int64
	}
	var rows []row
	err := c.db.Model(&model.ClickEvent{}).
		Select("offer_id, COUNT(id) AS n").
		Group("offer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count clicks per offer error: %v", err)
	}

	counts := make(map[int64]int64, len(rows))
	for _, r := range rows {
		counts[r.OfferID] = r.N
	}
	return counts, nil
}
