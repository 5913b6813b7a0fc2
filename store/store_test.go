package store

import (
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// newTestStore opens a fresh in-memory database per test. A single
// connection keeps every query on the same in-memory instance.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Offer{}, &model.UserBinding{}, &model.ClickEvent{}))
	return &Store{DB: db}
}

// seedOffers inserts the given URLs and returns the pool in id order.
func seedOffers(t *testing.T, s *Store, urls ...string) []model.Offer {
	t.Helper()

	offers := NewOfferStore(s)
	require.NoError(t, offers.SeedIfEmpty(urls))

	all, err := offers.All()
	require.NoError(t, err)
	return all
}

func fmtID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func countClicks(t *testing.T, s *Store) int64 {
	t.Helper()

	var n int64
	require.NoError(t, s.DB.Model(&model.ClickEvent{}).Count(&n).Error)
	return n
}
