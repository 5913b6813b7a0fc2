package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrmeowless/PartnerKitHelper/store"
)

func TestRedirectLink(t *testing.T) {
	b := &Bot{Hostname: "https://track.example.com"}
	assert.Equal(t, "https://track.example.com/r/7?u=12345", b.RedirectLink(7, "12345"))
}

func TestRenderReport(t *testing.T) {
	rep := store.Report{
		TotalUsers:  3,
		TotalClicks: 2,
		PerOffer: []store.OfferClicks{
			{URL: "https://a.example", Clicks: 2},
			{URL: "https://b.example", Clicks: 0},
		},
	}

	got := RenderReport(rep)
	assert.Contains(t, got, "👥 Пользователей: 3")
	assert.Contains(t, got, "🖱 Клики: 2")
	assert.Contains(t, got, "1) https://a.example — 2 кликов")
	assert.Contains(t, got, "2) https://b.example — 0 кликов")
}
