package update

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/storage"
	"github.com/jihokang/ddtd/internal/tasks"
	"github.com/jihokang/ddtd/internal/timers"
)

// Noon UTC on 2024-03-10 is 21:00 KST, so the active day key is
// 2024-03-10 and the week key 2024-W10.
var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	taskStore := tasks.NewStore(kv, nil)
	taskStore.Load(ctx)
	registry := timers.NewRegistry(kv, nil)
	registry.Load(ctx)
	dispatcher := timers.NewDispatcher(registry, kv, timers.NoopNotifier{}, true, nil)
	dispatcher.Load(ctx)

	m, err := NewModel(Deps{
		TaskStore:  taskStore,
		Registry:   registry,
		Dispatcher: dispatcher,
		Config:     DefaultRuntimeConfig(),
		Now:        func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewHome {
		t.Fatalf("expected default view %q, got %q", ViewHome, m.CurrentView)
	}
	if m.Tasks.Group != model.GroupDaily {
		t.Fatalf("expected daily group, got %q", m.Tasks.Group)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if len(m.dailyTasks) == 0 || len(m.weeklyTasks) == 0 || len(m.presets) == 0 {
		t.Fatal("catalog data should be loaded")
	}
}

func TestPeriodKeysFromFixedClock(t *testing.T) {
	m := newTestModel(t)
	if got := m.dayKey(); got != "2024-03-10" {
		t.Fatalf("day key = %q", got)
	}
	if got := m.weekKey(); got != "2024-W10" {
		t.Fatalf("week key = %q", got)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "2")
	if m.CurrentView != ViewTasks {
		t.Fatalf("expected tasks view, got %q", m.CurrentView)
	}
	m = pressKey(t, m, "4")
	if m.CurrentView != ViewDex {
		t.Fatalf("expected dex view, got %q", m.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewGuide})
	next := updated.(Model)
	if next.CurrentView != ViewGuide {
		t.Fatalf("expected guide view, got %q", next.CurrentView)
	}
	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewGuide {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestQuitKeySetsQuitting(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "q")
	if !m.Quitting {
		t.Fatal("expected quitting after q")
	}
}

func TestSpaceTogglesTaskForActivePeriod(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "2")

	first := m.dailyTasks[0]
	m = pressKey(t, m, " ")
	if !m.taskStore.IsDone(model.GroupDaily, "2024-03-10", first.ID) {
		t.Fatalf("task %q should be done after toggle", first.ID)
	}
	m = pressKey(t, m, " ")
	if m.taskStore.IsDone(model.GroupDaily, "2024-03-10", first.ID) {
		t.Fatalf("task %q should be undone after second toggle", first.ID)
	}
}

func TestTabSwitchesTaskGroup(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "2")
	m = pressKey(t, m, "tab")
	if m.Tasks.Group != model.GroupWeekly {
		t.Fatalf("expected weekly group, got %q", m.Tasks.Group)
	}
	// Weekly toggles land under the week key, not the day key.
	first := m.weeklyTasks[0]
	m = pressKey(t, m, " ")
	if !m.taskStore.IsDone(model.GroupWeekly, "2024-W10", first.ID) {
		t.Fatal("weekly toggle should use the week key")
	}
	if m.taskStore.IsDone(model.GroupDaily, "2024-03-10", first.ID) {
		t.Fatal("weekly toggle leaked into the daily bucket")
	}
}

func TestClearKeyResetsActivePeriod(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "2")
	m = pressKey(t, m, " ")
	m = pressKey(t, m, "c")
	if m.taskStore.DoneCount(model.GroupDaily, "2024-03-10") != 0 {
		t.Fatal("clear should empty the active period")
	}
}

func TestEnterStartsSelectedPreset(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "3")
	m = pressKey(t, m, "enter")
	runs := m.registry.Runs()
	if len(runs) != 1 {
		t.Fatalf("expected one running timer, got %d", len(runs))
	}
	if runs[0].PresetID != m.presets[0].ID {
		t.Fatalf("started preset %q, expected %q", runs[0].PresetID, m.presets[0].ID)
	}
	if runs[0].StartedAt != fixedNow.Unix() {
		t.Fatalf("run should start at the observed clock, got %d", runs[0].StartedAt)
	}
}

func TestRemoveAndClearAllRuns(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "3")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "j") // move to second preset
	m = pressKey(t, m, "enter")

	m = pressKey(t, m, "tab") // focus the run list
	m = pressKey(t, m, "d")
	if len(m.registry.Runs()) != 1 {
		t.Fatalf("expected one run after remove, got %d", len(m.registry.Runs()))
	}
	m = pressKey(t, m, "D")
	if len(m.registry.Runs()) != 0 {
		t.Fatalf("expected no runs after clear-all, got %d", len(m.registry.Runs()))
	}
}

func TestTickAdvancesClockAndFiresDispatcher(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "3")
	m = pressKey(t, m, "enter")
	run := m.registry.Runs()[0]

	after := fixedNow.Add(time.Duration(run.DurationSec) * time.Second)
	updated, _ := m.Update(TickMsg{At: after})
	m = updated.(Model)
	if !m.nowAt.Equal(after) {
		t.Fatalf("tick should advance the observed clock, got %v", m.nowAt)
	}
	if !strings.Contains(m.Status.Text, "timer complete") {
		t.Fatalf("expected completion status, got %q", m.Status.Text)
	}

	// The same completion never fires twice.
	if fired := m.dispatcher.Tick(context.Background(), after.Unix()+1); len(fired) != 0 {
		t.Fatalf("dispatcher refired: %v", fired)
	}
}

func TestTimersViewShowsEndTime(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "3")
	m = pressKey(t, m, "enter")

	// 12:00 UTC is 21:00 KST; the 900s truffle run ends 21:15:00.
	out := m.renderTimersView()
	if !strings.Contains(out, "ends 21:15:00") {
		t.Fatalf("running timer should show its end clock, got:\n%s", out)
	}

	// A finished run shows its DONE badge, not an end time.
	after := fixedNow.Add(time.Duration(m.presets[0].DurationSec) * time.Second)
	updated, _ := m.Update(TickMsg{At: after})
	m = updated.(Model)
	out = m.renderTimersView()
	if strings.Contains(out, "ends 21:15:00") || !strings.Contains(out, "[DONE]") {
		t.Fatalf("completed timer should drop the end clock, got:\n%s", out)
	}
}

func TestDexSearchFocusReturnsCmd(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "4")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)
	if !m.Dex.Searching {
		t.Fatal("slash should enter search mode")
	}
	if cmd == nil {
		t.Fatal("focusing the search input should schedule its cursor command")
	}
}

func TestDexSearchFiltersTable(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "4")
	total := len(m.Dex.Filtered)
	if total == 0 {
		t.Fatal("dex should start unfiltered")
	}

	m = pressKey(t, m, "/")
	if !m.Dex.Searching {
		t.Fatal("slash should enter search mode")
	}
	for _, r := range "truffle" {
		m = pressKey(t, m, string(r))
	}
	if len(m.Dex.Filtered) == 0 || len(m.Dex.Filtered) >= total {
		t.Fatalf("query should narrow the listing: %d of %d", len(m.Dex.Filtered), total)
	}
	m = pressKey(t, m, "enter")
	if m.Dex.Searching {
		t.Fatal("enter should leave search mode")
	}
	m = pressKey(t, m, "esc")
	if m.Dex.Query != "" || len(m.Dex.Filtered) != total {
		t.Fatalf("esc should clear the query, got %q with %d items", m.Dex.Query, len(m.Dex.Filtered))
	}
}

func TestDexCategoryAndSortCycle(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "4")

	m = pressKey(t, m, "f")
	if m.Dex.Category == "" {
		t.Fatal("f should select a concrete category")
	}
	for _, it := range m.Dex.Filtered {
		if it.Category != m.Dex.Category {
			t.Fatalf("item %q escaped the category filter", it.ID)
		}
	}

	m = pressKey(t, m, "o")
	for i := 1; i < len(m.Dex.Filtered); i++ {
		if m.Dex.Filtered[i-1].SellPrice < m.Dex.Filtered[i].SellPrice {
			t.Fatalf("price_desc out of order at %d", i)
		}
	}
}

func TestGuidePaging(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "5")
	if len(m.Guide.Slugs) < 2 {
		t.Fatalf("expected multiple guides, got %v", m.Guide.Slugs)
	}
	if m.Guide.Index != 0 {
		t.Fatalf("guide should open on the first page, got %d", m.Guide.Index)
	}
	m = pressKey(t, m, "l")
	if m.Guide.Index != 1 {
		t.Fatalf("l should advance the page, got %d", m.Guide.Index)
	}
	m = pressKey(t, m, "h")
	m = pressKey(t, m, "h")
	if m.Guide.Index != 0 {
		t.Fatalf("h should clamp at the first page, got %d", m.Guide.Index)
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	m := newTestModel(t)
	for _, key := range []string{"1", "2", "3", "4", "5"} {
		m = pressKey(t, m, key)
		out := m.View()
		if !strings.Contains(out, "ddtd") {
			t.Fatalf("view %q render missing header", m.CurrentView)
		}
	}
}
