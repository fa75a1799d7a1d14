package services

import (
	"context"

	"wedding-api/internal/models"
)

type RoleConfigStore interface {
	Load(ctx context.Context) (models.RoleConfig, bool, error)
}

type RoleConfigService struct {
	store RoleConfigStore
}

func NewRoleConfigService(store RoleConfigStore) *RoleConfigService {
	return &RoleConfigService{store: store}
}

// Get returns the stored role configuration, or the hardcoded default when
// the file has never been committed.
func (s *RoleConfigService) Get(ctx context.Context) (models.RoleConfig, error) {
	cfg, found, err := s.store.Load(ctx)
	if err != nil {
		return models.RoleConfig{}, err
	}
	if !found {
		return models.DefaultRoleConfig(), nil
	}
	return cfg, nil
}
