package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one row of the documents table used by GormBackend.
type Document struct {
	Name      string `gorm:"primaryKey"`
	Body      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string { return "documents" }

// GormBackend stores documents as rows keyed by name, for deployments without
// a writable disk.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var doc Document
	err := b.db.WithContext(ctx).First(&doc, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return []byte(doc.Body), nil
}

func (b *GormBackend) Write(ctx context.Context, name string, data []byte) error {
	doc := Document{Name: name, Body: string(data), UpdatedAt: time.Now()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
