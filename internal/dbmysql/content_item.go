package dbmysql

import (
	"time"
)

// ContentItem is the single shared table serving all three collections. The
// collection column is the discriminator; optional columns apply only to the
// collections that use them.
type ContentItem struct {
	ID         string `gorm:"primaryKey;column:id;size:36"`
	Collection string `gorm:"column:collection;size:16;not null;index:idx_collection_created,priority:1"`

	Title    string `gorm:"column:title;size:255;not null"`
	Content  string `gorm:"column:content;type:text;not null"`
	Category string `gorm:"column:category;size:100;index"`
	Status   string `gorm:"column:status;type:enum('published','draft');default:'published'"`

	// news, gallery
	ImageURL string `gorm:"column:image_url;size:512"`
	// news
	ShortDescription string `gorm:"column:short_description;size:512"`
	// gallery
	FileURL  string `gorm:"column:file_url;size:512"`
	FileName string `gorm:"column:file_name;size:255"`
	FileSize int64  `gorm:"column:file_size"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_collection_created,priority:2,sort:desc"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
