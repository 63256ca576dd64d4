package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	items := m.groupTasks(m.Tasks.Group)
	switch msg.String() {
	case "tab":
		if m.Tasks.Group == model.GroupDaily {
			m.Tasks.Group = model.GroupWeekly
		} else {
			m.Tasks.Group = model.GroupDaily
		}
		m.Tasks.Cursor = 0
	case "j", "down":
		if m.Tasks.Cursor < len(items)-1 {
			m.Tasks.Cursor++
		}
	case "k", "up":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case " ":
		if len(items) == 0 {
			break
		}
		task := items[m.Tasks.Cursor]
		key := m.periodKeyFor(m.Tasks.Group)
		if err := m.taskStore.Toggle(m.ctx, m.Tasks.Group, key, task.ID); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("toggle failed: %v", err), IsError: true}
			break
		}
		if m.taskStore.IsDone(m.Tasks.Group, key, task.ID) {
			m.Status = StatusBar{Text: fmt.Sprintf("done: %s", task.Title)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("undone: %s", task.Title)}
		}
	case "c":
		key := m.periodKeyFor(m.Tasks.Group)
		if err := m.taskStore.Clear(m.ctx, m.Tasks.Group, key); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("clear failed: %v", err), IsError: true}
			break
		}
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %s %s", m.Tasks.Group, key)}
	}
	return m
}

func (m Model) renderTasksView() string {
	group := m.Tasks.Group
	key := m.periodKeyFor(group)
	defs := m.groupTasks(group)

	items := make([]views.TaskItemData, 0, len(defs))
	selectedID := ""
	for i, task := range defs {
		if i == m.Tasks.Cursor {
			selectedID = task.ID
		}
		items = append(items, views.TaskItemData{
			ID:    task.ID,
			Title: task.Title,
			Done:  m.taskStore.IsDone(group, key, task.ID),
			Tags:  task.Tags,
			Links: task.Links,
		})
	}

	pct := m.taskStore.Progress(group, key, len(defs))
	return views.RenderTasksPanel(views.TasksPanelData{
		Group:        string(group),
		PeriodKey:    key,
		Items:        items,
		SelectedID:   selectedID,
		Done:         m.taskStore.DoneCount(group, key),
		Total:        len(defs),
		ProgressPct:  pct,
		ProgressView: m.progressBar.ViewAs(float64(pct) / 100),
	})
}
