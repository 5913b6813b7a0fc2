package store

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// UnknownUser is recorded when a redirect carries no user parameter.
const UnknownUser = "unknown"

// RedirectResolver turns a raw redirect request into the outbound offer
// URL, logging the click on the way. The offer id is the only input it
// validates.
type RedirectResolver struct {
	offers *OfferStore
	clicks *ClickLedger
}

func NewRedirectResolver(offers *OfferStore, clicks *ClickLedger) *RedirectResolver {
	return &RedirectResolver{offers: offers, clicks: clicks}
}

// Resolve looks up the offer, records a click and returns the offer URL
// with a subid tracking parameter appended. A malformed or unknown offer
// id fails with ErrOfferNotFound before any click is written.
func (r *RedirectResolver) Resolve(offerIDRaw, tgID string) (string, error) {
	id, err := strconv.ParseInt(offerIDRaw, 10, 64)
	if err != nil || id < 1 {
		return "", ErrOfferNotFound
	}
	if tgID == "" {
		tgID = UnknownUser
	}

	offer, err := r.offers.ByID(id)
	if err != nil {
		return "", err
	}

	if err := r.clicks.Record(tgID, offer.ID); err != nil {
		return "", err
	}

	return TrackedURL(offer, tgID), nil
}

// TrackedURL appends subid=<tgID> to the offer URL, picking & when the
// URL already has a query string.
func TrackedURL(offer model.Offer, tgID string) string {
	sep := "?"
	if strings.Contains(offer.URL, "?") {
		sep = "&"
	}
	return offer.URL + sep + "subid=" + url.QueryEscape(tgID)
}
