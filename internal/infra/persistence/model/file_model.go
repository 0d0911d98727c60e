package model

import "time"

// FileModel mirrors the 'files' table, one row per stored object. Rows with a
// nil PostID are orphaned editor uploads.
type FileModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Filename     string `gorm:"type:varchar(255);not null"`
	OriginalName string `gorm:"type:varchar(255);not null"`
	MimeType     string `gorm:"type:varchar(127);not null"`
	Size         int64  `gorm:"not null"`
	Path         string `gorm:"type:varchar(512);not null"`
	PostID       *int64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FileModel) TableName() string {
	return "files"
}
