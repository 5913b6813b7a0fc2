package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// Report is the admin statistics snapshot.
type Report struct {
	TotalUsers  int64
	TotalClicks int64
	PerOffer    []OfferClicks
}

// OfferClicks is one line of the per-offer breakdown, in offer id order.
type OfferClicks struct {
	URL    string
	Clicks int64
}

// StatsAggregator composes the stores into the admin report.
type StatsAggregator struct {
	db     *gorm.DB
	offers *OfferStore
	clicks *ClickLedger
}

func NewStatsAggregator(s *Store, offers *OfferStore, clicks *ClickLedger) *StatsAggregator {
	return &StatsAggregator{db: s.DB, offers: offers, clicks: clicks}
}

// Report counts users and clicks and joins the pool against per-offer
// click counts. Every offer gets a line, zero clicks included.
func (st *StatsAggregator) Report() (Report, error) {
	var rep Report

	if err := st.db.Model(&model.UserBinding{}).Count(&rep.TotalUsers).Error; err != nil {
		return Report{}, fmt.Errorf("count users error: %v", err)
	}

	var err error
	rep.TotalClicks, err = st.clicks.CountAll()
	if err != nil {
		return Report{}, err
	}

	offers, err := st.offers.All()
	if err != nil {
		return Report{}, err
	}
	counts, err := st.clicks.CountByOffer()
	if err != nil {
		return Report{}, err
	}

	rep.PerOffer = make([]OfferClicks, 0, len(offers))
	for _, o := range offers {
		rep.PerOffer = append(rep.PerOffer, OfferClicks{URL: o.URL, Clicks: counts[o.ID]})
	}
	return rep, nil
}
