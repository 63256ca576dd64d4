// Package update holds the bubbletea program: the model, its message
// loop, and the per-view key handlers. All persistence goes through
// the engine packages; this layer only reacts to keys and ticks.
package update

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/jihokang/ddtd/internal/catalog"
	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/period"
	"github.com/jihokang/ddtd/internal/scheduler"
	"github.com/jihokang/ddtd/internal/tasks"
	"github.com/jihokang/ddtd/internal/timers"
)

type View string

const (
	ViewHome   View = "Home"
	ViewTasks  View = "Tasks"
	ViewTimers View = "Timers"
	ViewDex    View = "Dex"
	ViewGuide  View = "Guide"
)

var viewOrder = []View{ViewHome, ViewTasks, ViewTimers, ViewDex, ViewGuide}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home   string
	Tasks  string
	Timers string
	Dex    string
	Guide  string
	Quit   string
}

type TasksViewState struct {
	Group  model.Group
	Cursor int
}

type TimersViewState struct {
	PresetCursor int
	RunCursor    int
	RunsFocused  bool
}

type DexViewState struct {
	Query     string
	Category  model.DexCategory // "" means all
	Sort      catalog.DexSort
	Searching bool
	Cursor    int
	Filtered  []model.DexItem
}

type GuideViewState struct {
	Slugs []string
	Index int
}

type Model struct {
	CurrentView View
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	Tasks  TasksViewState
	Timers TimersViewState
	Dex    DexViewState
	Guide  GuideViewState

	taskStore  *tasks.Store
	registry   *timers.Registry
	dispatcher *timers.Dispatcher
	engine     *scheduler.Engine

	dailyTasks  []model.Task
	weeklyTasks []model.Task
	presets     []model.TimerPreset
	dexItems    []model.DexItem

	cfg   RuntimeConfig
	zone  *time.Location
	now   func() time.Time
	nowAt time.Time
	ctx   context.Context
	log   *slog.Logger

	searchInput   textinput.Model
	dexTable      table.Model
	progressBar   progress.Model
	guideViewport viewport.Model
}

// Deps wires the engine layers into the TUI. Zone, Log, and Now are
// optional and default to the server zone, a discard logger, and the
// wall clock.
type Deps struct {
	TaskStore  *tasks.Store
	Registry   *timers.Registry
	Dispatcher *timers.Dispatcher
	Engine     *scheduler.Engine
	Config     RuntimeConfig
	Zone       *time.Location
	Log        *slog.Logger
	Now        func() time.Time
}

type TickMsg struct {
	At time.Time
}

type SwitchViewMsg struct {
	View View
}

func NewModel(deps Deps) (Model, error) {
	daily, err := catalog.TasksByGroup(model.GroupDaily)
	if err != nil {
		return Model{}, err
	}
	weekly, err := catalog.TasksByGroup(model.GroupWeekly)
	if err != nil {
		return Model{}, err
	}
	presets, err := catalog.Presets()
	if err != nil {
		return Model{}, err
	}
	dexItems, err := catalog.DexItems()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		CurrentView: ViewHome,
		Tasks:       TasksViewState{Group: model.GroupDaily},
		Dex: DexViewState{
			Sort: catalog.DexSortNameAsc,
		},
		Guide: GuideViewState{
			Slugs: catalog.GuideSlugs(),
		},
		taskStore:   deps.TaskStore,
		registry:    deps.Registry,
		dispatcher:  deps.Dispatcher,
		engine:      deps.Engine,
		dailyTasks:  daily,
		weeklyTasks: weekly,
		presets:     presets,
		dexItems:    dexItems,
		cfg:         deps.Config,
		zone:        deps.Zone,
		now:         deps.Now,
		ctx:         context.Background(),
		log:         deps.Log,
		Keys: GlobalKeyMap{
			Home:   "1",
			Tasks:  "2",
			Timers: "3",
			Dex:    "4",
			Guide:  "5",
			Quit:   "q",
		},
	}
	if m.zone == nil {
		m.zone = period.ServerZone()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	m.nowAt = m.now()

	m.initBubbleComponents()
	m.refilterDex()
	m.setGuidePage(0)
	return m, nil
}

func (m *Model) initBubbleComponents() {
	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/"
	m.searchInput.CharLimit = 64
	m.searchInput.Width = 32

	cols := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Category", Width: 10},
		{Title: "Rarity", Width: 10},
		{Title: "Sell", Width: 8},
	}
	m.dexTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.progressBar = progress.New(progress.WithDefaultGradient())
	m.progressBar.Width = 40

	m.guideViewport = viewport.New(68, 14)
}

// dayKey and weekKey derive the active period keys from the last
// observed instant, so every store call in one update sees the same
// period.
func (m Model) dayKey() string {
	return period.DayKey(m.nowAt, m.cfg.ResetHour, m.zone)
}

func (m Model) weekKey() string {
	return period.WeekKey(m.nowAt, m.cfg.ResetHour, m.zone)
}

func (m Model) groupTasks(group model.Group) []model.Task {
	if group == model.GroupWeekly {
		return m.weeklyTasks
	}
	return m.dailyTasks
}

func (m Model) periodKeyFor(group model.Group) string {
	if group == model.GroupWeekly {
		return m.weekKey()
	}
	return m.dayKey()
}
