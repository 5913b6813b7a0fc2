package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickCounts(t *testing.T) {
	s := newTestStore(t)
	all := seedOffers(t, s, "https://a.example", "https://b.example")
	clicks := NewClickLedger(s)

	require.NoError(t, clicks.Record("u1", all[0].ID))
	require.NoError(t, clicks.Record("u2", all[0].ID))
	require.NoError(t, clicks.Record("u1", all[1].ID))

	total, err := clicks.CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	perOffer, err := clicks.CountByOffer()
	require.NoError(t, err)
	assert.EqualValues(t, 2, perOffer[all[0].ID])
	assert.EqualValues(t, 1, perOffer[all[1].ID])
}

func TestRecordUnknownUser(t *testing.T) {
	s := newTestStore(t)
	all := seedOffers(t, s, "https://a.example")
	clicks := NewClickLedger(s)

	// Tracking is best-effort: no binding needs to exist for the user.
	require.NoError(t, clicks.Record(UnknownUser, all[0].ID))

	total, err := clicks.CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
