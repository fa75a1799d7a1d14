package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-api/internal/models"
)

type stubFAQStore struct {
	faqs        []models.FAQ
	sha         string
	saveCalls   int
	lastMessage string
}

func (s *stubFAQStore) Load(ctx context.Context) ([]models.FAQ, string, error) {
	out := make([]models.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out, s.sha, nil
}

func (s *stubFAQStore) Save(ctx context.Context, faqs []models.FAQ, sha, message string) error {
	s.saveCalls++
	s.faqs = faqs
	s.lastMessage = message
	return nil
}

func TestFAQListSortedByOrder(t *testing.T) {
	store := &stubFAQStore{faqs: []models.FAQ{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	}}
	svc := NewFAQService(store)

	faqs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	for i := 1; i < len(faqs); i++ {
		assert.LessOrEqual(t, faqs[i-1].Order, faqs[i].Order)
	}
}

func TestFAQSaveReplacesCollection(t *testing.T) {
	store := &stubFAQStore{faqs: []models.FAQ{{ID: "old", Order: 1}}, sha: "s1"}
	svc := NewFAQService(store)

	msg, err := svc.Save(context.Background(), []models.FAQ{
		{ID: "parking", Question: "Where do I park?", Order: 2},
		{ID: "gifts", Question: "Gifts?", Order: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "FAQs saved successfully", msg)
	assert.Equal(t, "Updated FAQs", store.lastMessage)
	require.Len(t, store.faqs, 2)
	assert.Equal(t, "gifts", store.faqs[0].ID, "saved file is sorted by order")
}

func TestFAQSaveAssignsMissingIDs(t *testing.T) {
	store := &stubFAQStore{}
	svc := NewFAQService(store)
	svc.idGen = func() string { return "gen00001" }

	_, err := svc.Save(context.Background(), []models.FAQ{{Question: "New one", Order: 1}})
	require.NoError(t, err)
	assert.Equal(t, "gen00001", store.faqs[0].ID)
}

func TestFAQSaveRejectsDuplicateIDs(t *testing.T) {
	store := &stubFAQStore{}
	svc := NewFAQService(store)

	_, err := svc.Save(context.Background(), []models.FAQ{
		{ID: "parking", Order: 1},
		{ID: "parking", Order: 2},
	})
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorConflict, se.Code)
	assert.Zero(t, store.saveCalls)
}

func TestFAQSaveRejectsNil(t *testing.T) {
	svc := NewFAQService(&stubFAQStore{})

	_, err := svc.Save(context.Background(), nil)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalid, se.Code)
	assert.Equal(t, "Invalid FAQs data: must be an array", se.Message)
}
