package services

import (
	"context"

	"wedding-api/internal/models"
)

type RSVPStore interface {
	Load(ctx context.Context) ([]models.RSVP, string, error)
	Save(ctx context.Context, rsvps []models.RSVP, sha, message string) error
}

type RSVPService struct {
	store RSVPStore
}

func NewRSVPService(store RSVPStore) *RSVPService {
	return &RSVPService{store: store}
}

// List returns every RSVP with legacy-format records upgraded.
func (s *RSVPService) List(ctx context.Context) ([]models.RSVP, error) {
	rsvps, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rsvps {
		rsvps[i].Normalize()
	}
	return rsvps, nil
}

// Save upserts the RSVP keyed by PIN: insert when absent, replace when
// present. The incoming payload wins wholesale.
func (s *RSVPService) Save(ctx context.Context, rsvp models.RSVP) (string, error) {
	if rsvp.Pin == "" {
		return "", NewInvalidError("Invalid RSVP data")
	}
	rsvp.Normalize()

	rsvps, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	for i := range rsvps {
		rsvps[i].Normalize()
	}

	idx := -1
	for i, r := range rsvps {
		if r.Pin == rsvp.Pin {
			idx = i
			break
		}
	}
	if idx != -1 {
		rsvps[idx] = rsvp
		if err := s.store.Save(ctx, rsvps, sha, "Updated RSVP"); err != nil {
			return "", err
		}
		return "RSVP updated", nil
	}
	rsvps = append(rsvps, rsvp)
	if err := s.store.Save(ctx, rsvps, sha, "New RSVP submission"); err != nil {
		return "", err
	}
	return "RSVP saved", nil
}

// Delete removes one RSVP. submittedAt disambiguates when present; empty
// matches the first entry for the PIN.
func (s *RSVPService) Delete(ctx context.Context, pin, submittedAt string) (string, error) {
	if pin == "" {
		return "", NewInvalidError("PIN is required")
	}
	rsvps, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	idx := -1
	for i, r := range rsvps {
		if r.Pin == pin && (submittedAt == "" || r.SubmittedAt == submittedAt) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", NewNotFoundError("RSVP not found")
	}
	rsvps = append(rsvps[:idx], rsvps[idx+1:]...)
	if err := s.store.Save(ctx, rsvps, sha, "Deleted RSVP"); err != nil {
		return "", err
	}
	return "RSVP deleted", nil
}
