package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"wedding-api/internal/models"
)

type FAQStore interface {
	Load(ctx context.Context) ([]models.FAQ, string, error)
	Save(ctx context.Context, faqs []models.FAQ, sha, message string) error
}

type FAQService struct {
	store FAQStore
	idGen func() string
}

func NewFAQService(store FAQStore) *FAQService {
	return &FAQService{
		store: store,
		idGen: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] },
	}
}

// List returns every FAQ sorted ascending by order.
func (s *FAQService) List(ctx context.Context) ([]models.FAQ, error) {
	faqs, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortFAQs(faqs)
	return faqs, nil
}

// Save replaces the whole FAQ collection. Entries without an id get one
// assigned; duplicate ids are rejected so the id stays a stable key.
func (s *FAQService) Save(ctx context.Context, faqs []models.FAQ) (string, error) {
	if faqs == nil {
		return "", NewInvalidError("Invalid FAQs data: must be an array")
	}
	seen := map[string]bool{}
	for i := range faqs {
		if faqs[i].ID == "" {
			faqs[i].ID = s.idGen()
		}
		if seen[faqs[i].ID] {
			return "", NewConflictError("A FAQ with this ID already exists")
		}
		seen[faqs[i].ID] = true
	}
	sortFAQs(faqs)

	_, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, faqs, sha, "Updated FAQs"); err != nil {
		return "", err
	}
	return "FAQs saved successfully", nil
}

func sortFAQs(faqs []models.FAQ) {
	sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].Order < faqs[j].Order })
}
