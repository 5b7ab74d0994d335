package output

import (
	"context"
	"fmt"
	"strings"
	"time"

	"data-exporter/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExportedFile is a document stored by the database target.
type ExportedFile struct {
	ID          uint   `gorm:"primaryKey"`
	Path        string `gorm:"size:512;uniqueIndex"`
	ContentType string `gorm:"size:128"`
	Checksum    string `gorm:"size:64"`
	Size        int64
	Content     []byte
	UpdatedAt   time.Time
}

// TableName overrides the table name used by ExportedFile.
func (ExportedFile) TableName() string {
	return "exported_files"
}

var exportedFileColumns = []string{"path", "content_type", "checksum", "size", "content", "updated_at"}

// DatabaseSink stores documents as rows of the exported_files table.
type DatabaseSink struct {
	db *gorm.DB
}

// NewDatabaseSink migrates the exported_files table and verifies its schema.
func NewDatabaseSink(db *gorm.DB) (*DatabaseSink, error) {
	if err := db.AutoMigrate(&ExportedFile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate exported_files: %w", err)
	}

	missing, err := database.MissingColumns(db, ExportedFile{}.TableName(), exportedFileColumns...)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("exported_files is missing columns: %s", strings.Join(missing, ", "))
	}

	return &DatabaseSink{db: db}, nil
}

func (s *DatabaseSink) WriteJSON(ctx context.Context, name string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return s.WriteFile(ctx, name, data)
}

// WriteFile inserts the document or replaces the row stored under the same name.
func (s *DatabaseSink) WriteFile(ctx context.Context, name string, data []byte) error {
	file := ExportedFile{
		Path:        name,
		ContentType: ContentType(name),
		Checksum:    Checksum(data),
		Size:        int64(len(data)),
		Content:     data,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns(exportedFileColumns[1:]),
	}).Create(&file).Error
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", name, err)
	}
	return nil
}

// Files lists stored documents without their content, ordered by path.
func (s *DatabaseSink) Files(ctx context.Context) ([]ExportedFile, error) {
	var files []ExportedFile
	err := s.db.WithContext(ctx).
		Select("id", "path", "content_type", "checksum", "size", "updated_at").
		Order("path").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exported files: %w", err)
	}
	return files, nil
}
