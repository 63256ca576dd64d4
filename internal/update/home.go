package update

import (
	"time"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/views"
)

func (m Model) renderHomeView() string {
	dayKey := m.dayKey()
	weekKey := m.weekKey()

	dailyDone := m.taskStore.DoneCount(model.GroupDaily, dayKey)
	weeklyDone := m.taskStore.DoneCount(model.GroupWeekly, weekKey)
	dailyProgress := m.taskStore.Progress(model.GroupDaily, dayKey, len(m.dailyTasks))
	weeklyProgress := m.taskStore.Progress(model.GroupWeekly, weekKey, len(m.weeklyTasks))

	return views.RenderHomePanel(views.HomePanelData{
		DayKey:         dayKey,
		WeekKey:        weekKey,
		DailyDone:      dailyDone,
		DailyTotal:     len(m.dailyTasks),
		DailyProgress:  dailyProgress,
		WeeklyDone:     weeklyDone,
		WeeklyTotal:    len(m.weeklyTasks),
		WeeklyProgress: weeklyProgress,
		ProgressView:   m.progressBar.ViewAs(float64(dailyProgress) / 100),
		Timers:         m.timerRows(),
	})
}

func (m Model) timerRows() []views.TimerRowData {
	runs := m.registry.Runs()
	now := m.nowAt.Unix()
	rows := make([]views.TimerRowData, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, views.TimerRowData{
			RunID:     run.RunID,
			Title:     run.Title,
			Remaining: model.FormatRemaining(run.Remaining(now)),
			EndsAt:    time.Unix(run.EndsAt(), 0).In(m.zone).Format("15:04:05"),
			Done:      run.Complete(now),
		})
	}
	return rows
}
