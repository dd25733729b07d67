package persist

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StorageSlot struct {
	Key       string         `gorm:"column:slot_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (StorageSlot) TableName() string { return "storage_slots" }

type GormSlot struct {
	db *gorm.DB
}

func NewGormSlot(db *gorm.DB) (*GormSlot, error) {
	if err := db.AutoMigrate(&StorageSlot{}); err != nil {
		return nil, err
	}
	return &GormSlot{db: db}, nil
}

func (g *GormSlot) Read(ctx context.Context, key string) ([]byte, error) {
	var row StorageSlot
	if err := g.db.WithContext(ctx).First(&row, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return []byte(row.Value), nil
}

func (g *GormSlot) Write(ctx context.Context, key string, data []byte) error {
	row := StorageSlot{
		Key:       key,
		Value:     datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (g *GormSlot) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
