package update

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/catalog"
	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/views"
)

// dexCategoryCycle is the [f] rotation; the empty entry means all.
var dexCategoryCycle = append([]model.DexCategory{""}, model.DexCategories()...)

var dexSortCycle = []catalog.DexSort{
	catalog.DexSortNameAsc,
	catalog.DexSortPriceDesc,
	catalog.DexSortPriceAsc,
}

func (m Model) handleDexKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.Dex.Searching = true
		return m, m.searchInput.Focus()
	case "f":
		m.Dex.Category = nextInCycle(dexCategoryCycle, m.Dex.Category)
		m.Dex.Cursor = 0
		m.refilterDex()
	case "o":
		m.Dex.Sort = nextInCycle(dexSortCycle, m.Dex.Sort)
		m.Dex.Cursor = 0
		m.refilterDex()
	case "j", "down":
		if m.Dex.Cursor < len(m.Dex.Filtered)-1 {
			m.Dex.Cursor++
			m.syncDexTable()
		}
	case "k", "up":
		if m.Dex.Cursor > 0 {
			m.Dex.Cursor--
			m.syncDexTable()
		}
	case "esc":
		m.Dex.Query = ""
		m.Dex.Cursor = 0
		m.searchInput.SetValue("")
		m.refilterDex()
	}
	return m, nil
}

func (m Model) handleDexSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Dex.Searching = false
		m.searchInput.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.Dex.Query = m.searchInput.Value()
		m.Dex.Cursor = 0
		m.refilterDex()
		return m, cmd
	}
}

func (m *Model) refilterDex() {
	m.Dex.Filtered = catalog.FilterDex(m.dexItems, m.Dex.Query, m.Dex.Category, m.Dex.Sort)
	m.syncDexTable()
}

func (m *Model) syncDexTable() {
	if m.Dex.Cursor >= len(m.Dex.Filtered) {
		m.Dex.Cursor = len(m.Dex.Filtered) - 1
	}
	if m.Dex.Cursor < 0 {
		m.Dex.Cursor = 0
	}
	rows := make([]table.Row, 0, len(m.Dex.Filtered))
	for _, it := range m.Dex.Filtered {
		rows = append(rows, table.Row{it.Name, string(it.Category), string(it.Rarity), strconv.Itoa(it.SellPrice)})
	}
	m.dexTable.SetRows(rows)
	m.dexTable.SetCursor(m.Dex.Cursor)
}

func (m Model) renderDexView() string {
	category := "all"
	if m.Dex.Category != "" {
		category = string(m.Dex.Category)
	}

	var selected *views.DexDetailData
	if len(m.Dex.Filtered) > 0 && m.Dex.Cursor < len(m.Dex.Filtered) {
		it := m.Dex.Filtered[m.Dex.Cursor]
		selected = &views.DexDetailData{
			Name:      it.Name,
			Category:  string(it.Category),
			Rarity:    string(it.Rarity),
			SellPrice: it.SellPrice,
			HowTo:     it.HowTo,
			Time:      it.Time,
			Weather:   it.Weather,
			Locations: it.Locations,
		}
	}

	return views.RenderDexPanel(views.DexPanelData{
		QueryView: m.searchInput.View(),
		Category:  category,
		Sort:      string(m.Dex.Sort),
		Count:     len(m.Dex.Filtered),
		TableView: m.dexTable.View(),
		Selected:  selected,
	})
}

func nextInCycle[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
