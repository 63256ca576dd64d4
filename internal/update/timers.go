package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/views"
)

func (m Model) handleTimersKey(msg tea.KeyMsg) Model {
	runs := m.registry.Runs()
	switch msg.String() {
	case "tab":
		m.Timers.RunsFocused = !m.Timers.RunsFocused
	case "j", "down":
		if m.Timers.RunsFocused {
			if m.Timers.RunCursor < len(runs)-1 {
				m.Timers.RunCursor++
			}
		} else if m.Timers.PresetCursor < len(m.presets)-1 {
			m.Timers.PresetCursor++
		}
	case "k", "up":
		if m.Timers.RunsFocused {
			if m.Timers.RunCursor > 0 {
				m.Timers.RunCursor--
			}
		} else if m.Timers.PresetCursor > 0 {
			m.Timers.PresetCursor--
		}
	case "enter":
		if m.Timers.RunsFocused || len(m.presets) == 0 {
			break
		}
		preset := m.presets[m.Timers.PresetCursor]
		run, err := m.registry.Start(m.ctx, preset, m.nowAt.Unix())
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("start failed: %v", err), IsError: true}
			break
		}
		m.Status = StatusBar{Text: fmt.Sprintf("timer started: %s", run.Title)}
	case "d":
		if !m.Timers.RunsFocused || len(runs) == 0 {
			break
		}
		run := runs[m.Timers.RunCursor]
		if err := m.registry.Remove(m.ctx, run.RunID); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("remove failed: %v", err), IsError: true}
			break
		}
		if m.Timers.RunCursor > 0 {
			m.Timers.RunCursor--
		}
		m.Status = StatusBar{Text: fmt.Sprintf("timer removed: %s", run.Title)}
	case "D":
		if err := m.registry.ClearAll(m.ctx); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("clear failed: %v", err), IsError: true}
			break
		}
		m.Timers.RunCursor = 0
		m.Status = StatusBar{Text: "all timers cleared"}
	}
	return m
}

func (m Model) renderTimersView() string {
	presets := make([]views.PresetRowData, 0, len(m.presets))
	for _, preset := range m.presets {
		presets = append(presets, views.PresetRowData{
			ID:       preset.ID,
			Title:    preset.Title,
			Duration: model.FormatRemaining(preset.DurationSec),
		})
	}
	return views.RenderTimersPanel(views.TimersPanelData{
		Presets:        presets,
		Runs:           m.timerRows(),
		PresetCursor:   m.Timers.PresetCursor,
		RunCursor:      m.Timers.RunCursor,
		RunListFocused: m.Timers.RunsFocused,
	})
}
