package store

import (
	"time"

	"amelias/api/internal/models"
)

// SubmissionPatch carries the only two fields an admin may change. Nil means
// leave the field alone.
type SubmissionPatch struct {
	Status *models.SubmissionStatus
	Notes  *string
}

func (s *Store) Commissions() []models.CommissionRequest {
	mu := s.lock(CollectionCommissions)
	mu.Lock()
	defer mu.Unlock()

	return readCollection[models.CommissionRequest](s, CollectionCommissions)
}

func (s *Store) AddCommission(record models.CommissionRequest) error {
	mu := s.lock(CollectionCommissions)
	mu.Lock()
	defer mu.Unlock()

	items := readCollection[models.CommissionRequest](s, CollectionCommissions)
	items = append([]models.CommissionRequest{record}, items...)
	return writeCollection(s, CollectionCommissions, items)
}

// UpdateCommission merges the patch into the matching record, stamps
// updatedAt, and leaves every other field untouched.
func (s *Store) UpdateCommission(id string, patch SubmissionPatch) (models.CommissionRequest, error) {
	mu := s.lock(CollectionCommissions)
	mu.Lock()
	defer mu.Unlock()

	items := readCollection[models.CommissionRequest](s, CollectionCommissions)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Status != nil {
			items[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			items[i].Notes = *patch.Notes
		}
		items[i].UpdatedAt = time.Now().UTC()

		if err := writeCollection(s, CollectionCommissions, items); err != nil {
			return models.CommissionRequest{}, err
		}
		return items[i], nil
	}
	return models.CommissionRequest{}, ErrNotFound
}

func (s *Store) Enquiries() []models.Enquiry {
	mu := s.lock(CollectionEnquiries)
	mu.Lock()
	defer mu.Unlock()

	return readCollection[models.Enquiry](s, CollectionEnquiries)
}

func (s *Store) AddEnquiry(record models.Enquiry) error {
	mu := s.lock(CollectionEnquiries)
	mu.Lock()
	defer mu.Unlock()

	items := readCollection[models.Enquiry](s, CollectionEnquiries)
	items = append([]models.Enquiry{record}, items...)
	return writeCollection(s, CollectionEnquiries, items)
}

func (s *Store) UpdateEnquiry(id string, patch SubmissionPatch) (models.Enquiry, error) {
	mu := s.lock(CollectionEnquiries)
	mu.Lock()
	defer mu.Unlock()

	items := readCollection[models.Enquiry](s, CollectionEnquiries)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Status != nil {
			items[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			items[i].Notes = *patch.Notes
		}
		items[i].UpdatedAt = time.Now().UTC()

		if err := writeCollection(s, CollectionEnquiries, items); err != nil {
			return models.Enquiry{}, err
		}
		return items[i], nil
	}
	return models.Enquiry{}, ErrNotFound
}
