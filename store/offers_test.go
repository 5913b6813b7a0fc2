package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmptyPreservesOrder(t *testing.T) {
	s := newTestStore(t)

	all := seedOffers(t, s, "https://a.example", "https://b.example", "https://c.example")
	require.Len(t, all, 3)
	assert.Equal(t, "https://a.example", all[0].URL)
	assert.Equal(t, "https://b.example", all[1].URL)
	assert.Equal(t, "https://c.example", all[2].URL)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	offers := NewOfferStore(s)

	require.NoError(t, offers.SeedIfEmpty([]string{"https://a.example", "https://b.example"}))
	n, err := offers.Count()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// Second seed with different links must not touch the pool.
	require.NoError(t, offers.SeedIfEmpty([]string{"https://other.example"}))
	n, err = offers.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSeedIfEmptyFallback(t *testing.T) {
	s := newTestStore(t)

	all := seedOffers(t, s)
	require.Len(t, all, 1)
	assert.Equal(t, FallbackOfferURL, all[0].URL)
}

func TestSeedIfEmptyRejectsEmptyURL(t *testing.T) {
	s := newTestStore(t)
	offers := NewOfferStore(s)

	require.Error(t, offers.SeedIfEmpty([]string{"https://a.example", ""}))
}

func TestByID(t *testing.T) {
	s := newTestStore(t)
	all := seedOffers(t, s, "https://a.example")
	offers := NewOfferStore(s)

	got, err := offers.ByID(all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0], got)

	_, err = offers.ByID(9999)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}
