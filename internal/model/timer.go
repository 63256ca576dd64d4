package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDuration = errors.New("model: invalid timer duration")

// TimerPreset is a named fixed-duration countdown template. Presets
// are static catalog data; users start any number of runs from one.
type TimerPreset struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DurationSec int64  `json:"durationSec"`
}

func (p TimerPreset) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: preset id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("model: preset title is required")
	}
	if p.DurationSec <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, p.DurationSec)
	}
	return nil
}

// TimerRun is one live countdown instance started from a preset.
// Title and duration are snapshots taken at start time so a later
// preset edit does not retroactively rename or resize running
// instances. StartedAt is epoch seconds.
type TimerRun struct {
	RunID       string `json:"runId"`
	PresetID    string `json:"presetId"`
	Title       string `json:"title"`
	DurationSec int64  `json:"durationSec"`
	StartedAt   int64  `json:"startedAt"`
}

// Remaining returns the seconds left on the run at now, floored at 0.
func (r TimerRun) Remaining(now int64) int64 {
	remain := r.StartedAt + r.DurationSec - now
	if remain < 0 {
		return 0
	}
	return remain
}

// Complete reports whether the run has counted down to zero.
func (r TimerRun) Complete(now int64) bool {
	return r.Remaining(now) == 0
}

// EndsAt returns the epoch second at which the run completes.
func (r TimerRun) EndsAt() int64 {
	return r.StartedAt + r.DurationSec
}

// FormatRemaining renders seconds as H:MM:SS when at least an hour
// remains, otherwise M:SS. Minutes and seconds are zero-padded, the
// leading unit is not.
func FormatRemaining(sec int64) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
