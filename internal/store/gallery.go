package store

import "amelias/api/internal/models"

// Gallery returns all gallery items, newest first.
func (s *Store) Gallery() []models.GalleryItem {
	mu := s.lock(CollectionGallery)
	mu.Lock()
	defer mu.Unlock()

	return readCollection[models.GalleryItem](s, CollectionGallery)
}

// AddGalleryItem inserts at the head so list order stays reverse-chronological.
func (s *Store) AddGalleryItem(item models.GalleryItem) error {
	mu := s.lock(CollectionGallery)
	mu.Lock()
	defer mu.Unlock()

	items := readCollection[models.GalleryItem](s, CollectionGallery)
	items = append([]models.GalleryItem{item}, items...)
	return writeCollection(s, CollectionGallery, items)
}
