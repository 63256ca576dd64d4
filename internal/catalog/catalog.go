// Package catalog serves the static game data ddtd renders: chore
// definitions, timer presets, the collection dex, and guide pages.
// Everything is embedded at build time and immutable at runtime; the
// engine only ever reads from here.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jihokang/ddtd/internal/model"
)

//go:embed data
var dataFiles embed.FS

// Tasks returns all chore definitions sorted by ascending priority.
func Tasks() ([]model.Task, error) {
	var tasks []model.Task
	if err := loadJSON("data/tasks.json", &tasks); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: task %q: %w", t.ID, err)
		}
	}
	model.SortTasks(tasks)
	return tasks, nil
}

// TasksByGroup returns the sorted definitions for one group.
func TasksByGroup(group model.Group) ([]model.Task, error) {
	all, err := Tasks()
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.Group == group {
			out = append(out, t)
		}
	}
	return out, nil
}

// Presets returns the timer preset list in catalog order.
func Presets() ([]model.TimerPreset, error) {
	var presets []model.TimerPreset
	if err := loadJSON("data/presets.json", &presets); err != nil {
		return nil, err
	}
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: preset %q: %w", p.ID, err)
		}
	}
	return presets, nil
}

// PresetByID looks a preset up; ok is false for unknown ids.
func PresetByID(id string) (model.TimerPreset, bool, error) {
	presets, err := Presets()
	if err != nil {
		return model.TimerPreset{}, false, err
	}
	for _, p := range presets {
		if p.ID == id {
			return p, true, nil
		}
	}
	return model.TimerPreset{}, false, nil
}

// DexItems returns every collection entry.
func DexItems() ([]model.DexItem, error) {
	var items []model.DexItem
	if err := loadJSON("data/dex_items.json", &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: dex item %q: %w", it.ID, err)
		}
	}
	return items, nil
}

func loadJSON(name string, v any) error {
	raw, err := dataFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// DexSort orders a filtered dex listing.
type DexSort string

const (
	DexSortNameAsc   DexSort = "name_asc"
	DexSortPriceDesc DexSort = "price_desc"
	DexSortPriceAsc  DexSort = "price_asc"
)

// FilterDex narrows items by free-text query and category, then sorts.
// The query matches case-insensitively against name, id, keywords,
// how-to lines, locations, times, and weather. An empty category
// means all categories.
func FilterDex(items []model.DexItem, query string, category model.DexCategory, order DexSort) []model.DexItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.DexItem, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(haystack(it), q) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch order {
		case DexSortPriceDesc:
			return out[i].SellPrice > out[j].SellPrice
		case DexSortPriceAsc:
			return out[i].SellPrice < out[j].SellPrice
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}

func haystack(it model.DexItem) string {
	parts := []string{it.Name, it.ID}
	parts = append(parts, it.Keywords...)
	parts = append(parts, it.HowTo...)
	parts = append(parts, it.Locations...)
	parts = append(parts, it.Time...)
	parts = append(parts, it.Weather...)
	return strings.ToLower(strings.Join(parts, " "))
}
