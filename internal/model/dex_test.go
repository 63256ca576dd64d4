package model

import (
	"errors"
	"testing"
)

func TestDexItemValidate(t *testing.T) {
	valid := DexItem{
		ID:       "fish_moon_carp",
		Name:     "Moon Carp",
		Category: DexFish,
		Rarity:   RarityRare,
		HowTo:    []string{"Fish in the lake at night"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid dex item rejected: %v", err)
	}

	badCategory := valid
	badCategory.Category = "mineral"
	if err := badCategory.Validate(); !errors.Is(err, ErrInvalidDexCategory) {
		t.Fatalf("expected ErrInvalidDexCategory, got %v", err)
	}

	badRarity := valid
	badRarity.Rarity = "mythic"
	if err := badRarity.Validate(); !errors.Is(err, ErrInvalidDexRarity) {
		t.Fatalf("expected ErrInvalidDexRarity, got %v", err)
	}

	noRarity := valid
	noRarity.Rarity = ""
	if err := noRarity.Validate(); err != nil {
		t.Fatalf("rarity should be optional: %v", err)
	}
}
