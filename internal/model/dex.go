package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDexCategory = errors.New("model: invalid dex category")
	ErrInvalidDexRarity   = errors.New("model: invalid dex rarity")
)

type DexCategory string

const (
	DexFish   DexCategory = "fish"
	DexBug    DexCategory = "bug"
	DexBird   DexCategory = "bird"
	DexFood   DexCategory = "food"
	DexGarden DexCategory = "garden"
)

func (c DexCategory) IsValid() bool {
	switch c {
	case DexFish, DexBug, DexBird, DexFood, DexGarden:
		return true
	default:
		return false
	}
}

// DexCategories lists all categories in display order.
func DexCategories() []DexCategory {
	return []DexCategory{DexFish, DexBug, DexBird, DexFood, DexGarden}
}

type DexRarity string

const (
	RarityCommon    DexRarity = "common"
	RarityUncommon  DexRarity = "uncommon"
	RarityRare      DexRarity = "rare"
	RarityEpic      DexRarity = "epic"
	RarityLegendary DexRarity = "legendary"
)

func (r DexRarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// DexItem is a static collection entry: how to obtain a fish, bug,
// bird sighting, dish, or plant, with the conditions attached.
type DexItem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  DexCategory `json:"category"`
	Rarity    DexRarity   `json:"rarity,omitempty"`
	SellPrice int         `json:"sellPrice,omitempty"`
	HowTo     []string    `json:"howTo"`
	Time      []string    `json:"time,omitempty"`
	Weather   []string    `json:"weather,omitempty"`
	Locations []string    `json:"locations,omitempty"`
	Keywords  []string    `json:"keywords,omitempty"`
}

func (d DexItem) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("model: dex item id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("model: dex item name is required")
	}
	if !d.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDexCategory, d.Category)
	}
	if d.Rarity != "" && !d.Rarity.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDexRarity, d.Rarity)
	}
	return nil
}
