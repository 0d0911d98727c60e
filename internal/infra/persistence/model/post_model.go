package model

import "time"

// PostModel mirrors the 'posts' table. Slug carries a unique index; the
// application regenerates it from the title on every save.
type PostModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(255);not null"`
	Slug       string `gorm:"type:varchar(255);unique;not null"`
	Excerpt    *string
	Content    string `gorm:"type:text;not null"`
	CoverImage *string
	Published  bool `gorm:"not null;default:false"`
	AuthorID   *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
