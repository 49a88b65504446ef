package models

import "time"

// GalleryItem is immutable after creation; a re-upload creates a new item.
type GalleryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	URL       string    `json:"url"`
	ThumbURL  string    `json:"thumbUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
