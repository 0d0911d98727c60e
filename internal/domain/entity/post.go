package entity

import "time"

// Post is a blog article managed through the CMS.
type Post struct {
	ID         int64
	Title      string
	Slug       string  // Unique, derived from the title on every save.
	Excerpt    *string // Optional teaser text; nil when the form field was left empty.
	Content    string
	CoverImage *string // Public URL of the transcoded cover image, nil when none was uploaded.
	Published  bool
	AuthorID   *int64
	Author     *User // Loaded for public listings; nil elsewhere.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
