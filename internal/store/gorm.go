package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"betaradar/internal/model"
)

// snapshotItem is one stored feed entry. Position preserves the
// sorted order of the snapshot across a round-trip.
type snapshotItem struct {
	Position          int    `gorm:"primaryKey;autoIncrement:false"`
	ItemID            string `gorm:"index"`
	Title             string
	Summary           string
	URL               string
	Source            string
	SourceIcon        string
	Date              string
	Type              string
	Platform          string
	Image             string
	TitleTranslated   string
	SummaryTranslated string
}

type snapshotMeta struct {
	ID          uint `gorm:"primaryKey"`
	LastUpdated string
}

// GormStore keeps the snapshot in a SQLite database. Functionally
// identical to FileStore, whole-snapshot semantics included.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens (and migrates) the SQLite-backed repository.
func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %v", err)
	}
	if err := db.AutoMigrate(&snapshotItem{}, &snapshotMeta{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite store: %v", err)
	}
	return &GormStore{db: db}, nil
}

// Load reads the stored snapshot. An empty database is an empty store.
func (gs *GormStore) Load() (model.AggregateResult, error) {
	var meta snapshotMeta
	if err := gs.db.First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AggregateResult{}, nil
		}
		return model.AggregateResult{}, fmt.Errorf("failed to read snapshot meta: %v", err)
	}

	var rows []snapshotItem
	if err := gs.db.Order("position").Find(&rows).Error; err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to read snapshot items: %v", err)
	}

	result := model.AggregateResult{
		LastUpdated: meta.LastUpdated,
		Items:       make([]model.NewsItem, 0, len(rows)),
	}
	for _, row := range rows {
		result.Items = append(result.Items, model.NewsItem{
			ID:                row.ItemID,
			Title:             row.Title,
			Summary:           row.Summary,
			URL:               row.URL,
			Source:            row.Source,
			SourceIcon:        row.SourceIcon,
			Date:              row.Date,
			Type:              row.Type,
			Platform:          row.Platform,
			Image:             row.Image,
			TitleTranslated:   row.TitleTranslated,
			SummaryTranslated: row.SummaryTranslated,
		})
	}
	result.Recount()
	return result, nil
}

// Save replaces the stored snapshot wholesale.
func (gs *GormStore) Save(result model.AggregateResult) error {
	return gs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&snapshotItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear snapshot items: %v", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&snapshotMeta{}).Error; err != nil {
			return fmt.Errorf("failed to clear snapshot meta: %v", err)
		}

		for i, item := range result.Items {
			row := snapshotItem{
				Position:          i,
				ItemID:            item.ID,
				Title:             item.Title,
				Summary:           item.Summary,
				URL:               item.URL,
				Source:            item.Source,
				SourceIcon:        item.SourceIcon,
				Date:              item.Date,
				Type:              item.Type,
				Platform:          item.Platform,
				Image:             item.Image,
				TitleTranslated:   item.TitleTranslated,
				SummaryTranslated: item.SummaryTranslated,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to write snapshot item: %v", err)
			}
		}

		if err := tx.Create(&snapshotMeta{ID: 1, LastUpdated: result.LastUpdated}).Error; err != nil {
			return fmt.Errorf("failed to write snapshot meta: %v", err)
		}
		return nil
	})
}
