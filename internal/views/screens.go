package views

import (
	"fmt"
	"strings"
)

type TimerRowData struct {
	RunID     string
	Title     string
	Remaining string
	EndsAt    string
	Done      bool
}

type HomePanelData struct {
	DayKey         string
	WeekKey        string
	DailyDone      int
	DailyTotal     int
	DailyProgress  int
	WeeklyDone     int
	WeeklyTotal    int
	WeeklyProgress int
	ProgressView   string
	Timers         []TimerRowData
}

type TaskItemData struct {
	ID    string
	Title string
	Done  bool
	Tags  []string
	Links []string
}

type TasksPanelData struct {
	Group        string
	PeriodKey    string
	Items        []TaskItemData
	SelectedID   string
	Done         int
	Total        int
	ProgressPct  int
	ProgressView string
}

type PresetRowData struct {
	ID       string
	Title    string
	Duration string
}

type TimersPanelData struct {
	Presets        []PresetRowData
	Runs           []TimerRowData
	PresetCursor   int
	RunCursor      int
	RunListFocused bool
}

type DexDetailData struct {
	Name      string
	Category  string
	Rarity    string
	SellPrice int
	HowTo     []string
	Time      []string
	Weather   []string
	Locations []string
}

type DexPanelData struct {
	QueryView string
	Category  string
	Sort      string
	Count     int
	TableView string
	Selected  *DexDetailData
}

type GuidePanelData struct {
	Slugs        []string
	SelectedSlug string
	Title        string
	BodyView     string
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString("home:\n")
	b.WriteString(fmt.Sprintf("day: %s | week: %s\n", data.DayKey, data.WeekKey))
	b.WriteString(fmt.Sprintf("daily: %d/%d (%d%%)\n", data.DailyDone, data.DailyTotal, data.DailyProgress))
	b.WriteString(fmt.Sprintf("weekly: %d/%d (%d%%)\n", data.WeeklyDone, data.WeeklyTotal, data.WeeklyProgress))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	b.WriteString("\ntimers:\n")
	if len(data.Timers) == 0 {
		b.WriteString("  (none running)\n")
	}
	for _, run := range data.Timers {
		b.WriteString(fmt.Sprintf("  %s %s\n", timerBadge(run), run.Title))
	}
	b.WriteString("actions: [1]home [2]tasks [3]timers [4]dex [5]guide [q]quit")
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s tasks (%s):\n", data.Group, data.PeriodKey))
	b.WriteString("actions: [tab]group [j/k]move [space]toggle [c]clear-period\n")
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, mark, item.Title))
		if len(item.Tags) > 0 {
			b.WriteString(" #" + strings.Join(item.Tags, " #"))
		}
		b.WriteString("\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("  (no tasks in this group)\n")
	}
	b.WriteString(fmt.Sprintf("\ndone: %d/%d (%d%%)\n", data.Done, data.Total, data.ProgressPct))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView)
	}
	return strings.TrimSpace(b.String())
}

func RenderTimersPanel(data TimersPanelData) string {
	var b strings.Builder
	b.WriteString("timers:\n")
	b.WriteString("actions: [tab]section [j/k]move [enter]start [d]remove [D]clear-all\n")

	b.WriteString("\npresets:\n")
	for i, preset := range data.Presets {
		cursor := " "
		if !data.RunListFocused && i == data.PresetCursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, preset.Title, preset.Duration))
	}

	b.WriteString("\nrunning:\n")
	if len(data.Runs) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, run := range data.Runs {
		cursor := " "
		if data.RunListFocused && i == data.RunCursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, timerBadge(run), run.Title))
		if !run.Done && run.EndsAt != "" {
			b.WriteString(fmt.Sprintf(" ends %s", run.EndsAt))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderDexPanel(data DexPanelData) string {
	var b strings.Builder
	b.WriteString("dex:\n")
	b.WriteString("actions: [/]search [f]category [o]sort [j/k]move [esc]clear\n")
	b.WriteString(fmt.Sprintf("search: %s\n", data.QueryView))
	b.WriteString(fmt.Sprintf("category: %s | sort: %s | matches: %d\n", data.Category, data.Sort, data.Count))
	b.WriteString(data.TableView)

	if data.Selected != nil {
		sel := data.Selected
		b.WriteString("\n\ndetail:\n")
		b.WriteString(fmt.Sprintf("%s | %s", sel.Name, sel.Category))
		if sel.Rarity != "" {
			b.WriteString(fmt.Sprintf(" (%s)", sel.Rarity))
		}
		b.WriteString(fmt.Sprintf("\nsell: %d\n", sel.SellPrice))
		writeDetailList(&b, "how", sel.HowTo)
		writeDetailList(&b, "time", sel.Time)
		writeDetailList(&b, "weather", sel.Weather)
		writeDetailList(&b, "where", sel.Locations)
	}
	return strings.TrimSpace(b.String())
}

func RenderGuidePanel(data GuidePanelData) string {
	var b strings.Builder
	b.WriteString("guide:\n")
	b.WriteString("actions: [h/l]page [j/k]scroll\n")
	for _, slug := range data.Slugs {
		cursor := " "
		if slug == data.SelectedSlug {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, slug))
	}
	b.WriteString("\n" + data.BodyView)
	return strings.TrimSpace(b.String())
}

func writeDetailList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", label, strings.Join(values, "; ")))
}

func timerBadge(run TimerRowData) string {
	if run.Done {
		return "[DONE]"
	}
	return "[" + run.Remaining + "]"
}
