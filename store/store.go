package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/mrmeowless/PartnerKitHelper/model"
)

// Store owns the shared database handle. Components borrow it through
// their constructors; nothing else opens connections.
type Store struct {
	DB *gorm.DB
}

// Open connects to the SQLite file at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database error: %v", err)
	}
	if err := db.AutoMigrate(&model.Offer{}, &model.UserBinding{}, &model.ClickEvent{}); err != nil {
		return nil, fmt.Errorf("migrate error: %v", err)
	}
	return &Store{DB: db}, nil
}
