package service

import (
	"testing"

	"deal-calculator/repository"
)

func TestSaveAndLoadConfiguration(t *testing.T) {

	service := NewConfigService(repository.NewMockCache())

	input := sampleInput()
	saved, err := service.SaveConfiguration("duplex on elm", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated ID")
	}

	loaded, err := service.LoadConfiguration(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Name != "duplex on elm" {
		t.Errorf("expected name round trip, got %q", loaded.Name)
	}
	if loaded.Input.Property.PurchasePrice != input.Property.PurchasePrice {
		t.Errorf("expected input round trip, got %.2f", loaded.Input.Property.PurchasePrice)
	}
}

func TestSaveConfiguration_EmptyName(t *testing.T) {

	service := NewConfigService(repository.NewMockCache())

	if _, err := service.SaveConfiguration("", sampleInput()); err == nil {
		t.Errorf("expected error for empty name")
	}
}

func TestLoadConfiguration_NotFound(t *testing.T) {

	service := NewConfigService(repository.NewMockCache())

	if _, err := service.LoadConfiguration("missing-id"); err == nil {
		t.Errorf("expected error for unknown id")
	}
}
