package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"deal-calculator/domain"
	"deal-calculator/repository"
)

type ConfigService struct {
	cache repository.CacheRepository
}

// NewConfigService creates a ConfigService backed by the given cache.
func NewConfigService(cache repository.CacheRepository) *ConfigService {
	return &ConfigService{cache: cache}
}

// SaveConfiguration stores a named deal input and returns its generated ID.
func (s *ConfigService) SaveConfiguration(name string, input domain.DealInput) (domain.SavedConfiguration, error) {
	if name == "" {
		return domain.SavedConfiguration{}, errors.New("configuration name is required")
	}

	cfg := domain.SavedConfiguration{
		ID:    uuid.NewString(),
		Name:  name,
		Input: input,
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return domain.SavedConfiguration{}, fmt.Errorf("serialize configuration: %w", err)
	}
	if err := s.cache.Set(cfg.ID, string(payload)); err != nil {
		return domain.SavedConfiguration{}, fmt.Errorf("store configuration: %w", err)
	}

	return cfg, nil
}

// LoadConfiguration retrieves a saved configuration by ID.
func (s *ConfigService) LoadConfiguration(id string) (domain.SavedConfiguration, error) {
	if id == "" {
		return domain.SavedConfiguration{}, errors.New("configuration id is required")
	}

	payload, ok := s.cache.Get(id)
	if !ok {
		return domain.SavedConfiguration{}, fmt.Errorf("configuration %s not found", id)
	}

	var cfg domain.SavedConfiguration
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return domain.SavedConfiguration{}, fmt.Errorf("decode configuration: %w", err)
	}

	return cfg, nil
}
