package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/scheduler"
	"github.com/jihokang/ddtd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.engine != nil {
		return waitForTickCmd(m.engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.CurrentView == ViewDex && m.Dex.Searching {
			return m.handleDexSearchKey(typed)
		}

		switch typed.String() {
		case m.Keys.Home:
			m.CurrentView = ViewHome
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Timers:
			m.CurrentView = ViewTimers
			return m, nil
		case m.Keys.Dex:
			m.CurrentView = ViewDex
			return m, nil
		case m.Keys.Guide:
			m.CurrentView = ViewGuide
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewTasks:
			return m.handleTasksKey(typed), nil
		case ViewTimers:
			return m.handleTimersKey(typed), nil
		case ViewDex:
			return m.handleDexKey(typed)
		case ViewGuide:
			return m.handleGuideKey(typed), nil
		}
	case TickMsg:
		return m.onTick(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	}
	return m, nil
}

// onTick advances the observed clock and runs one notification scan.
// The scan is keyed to the tick instant, not time.Now, so the whole
// update is consistent with what the panels render.
func (m Model) onTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.nowAt = msg.At
	if m.dispatcher != nil {
		fired := m.dispatcher.Tick(m.ctx, msg.At.Unix())
		if len(fired) > 0 {
			last := fired[len(fired)-1]
			m.Status = StatusBar{Text: fmt.Sprintf("timer complete: %s", last.Title)}
		}
	}
	if m.engine != nil {
		return m, waitForTickCmd(m.engine.C())
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.CurrentView {
	case ViewHome:
		body = m.renderHomeView()
	case ViewTasks:
		body = m.renderTasksView()
	case ViewTimers:
		body = m.renderTimersView()
	case ViewDex:
		body = m.renderDexView()
	case ViewGuide:
		body = m.renderGuideView()
	}

	names := make([]string, 0, len(viewOrder))
	active := 0
	for i, v := range viewOrder {
		names = append(names, string(v))
		if v == m.CurrentView {
			active = i
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("ddtd | day %s | week %s", m.dayKey(), m.weekKey()),
		Tabs:       views.RenderTabs(names, active),
		Body:       body,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s home | %s tasks | %s timers | %s dex | %s guide | %s quit",
			m.Keys.Home, m.Keys.Tasks, m.Keys.Timers, m.Keys.Dex, m.Keys.Guide, m.Keys.Quit),
	})
}

func waitForTickCmd(ch <-chan scheduler.TickEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TickMsg{At: ev.At}
	}
}

func isKnownView(v View) bool {
	for _, known := range viewOrder {
		if v == known {
			return true
		}
	}
	return false
}
