// Package timers manages respawn countdown runs: independently
// started instances of fixed-duration presets that survive restarts
// and fire one desktop notification each on completion.
package timers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/storage"
)

// RunsStorageKey holds the ordered run collection, newest first.
const RunsStorageKey = "ddtd_timers_v1"

// Registry owns the active run collection. Runs are never
// auto-removed on completion; a finished run stays visible until the
// user dismisses it.
type Registry struct {
	kv    storage.Store
	log   *slog.Logger
	newID func() string
	runs  []model.TimerRun
}

func NewRegistry(kv storage.Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Registry{kv: kv, log: log, newID: uuid.NewString}
}

// Load reads the persisted run collection, starting empty on any
// failure.
func (r *Registry) Load(ctx context.Context) {
	r.runs = nil
	raw, ok, err := r.kv.Load(ctx, RunsStorageKey)
	if err != nil {
		r.log.Warn("timer runs load failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	var runs []model.TimerRun
	if err := json.Unmarshal([]byte(raw), &runs); err != nil {
		r.log.Warn("timer runs corrupt, starting empty", "error", err)
		return
	}
	r.runs = runs
}

// Runs returns the collection newest-first.
func (r *Registry) Runs() []model.TimerRun {
	out := make([]model.TimerRun, len(r.runs))
	copy(out, r.runs)
	return out
}

func (r *Registry) Len() int { return len(r.runs) }

// Start creates a run from preset at now, snapshotting title and
// duration, prepends it, and persists.
func (r *Registry) Start(ctx context.Context, preset model.TimerPreset, now int64) (model.TimerRun, error) {
	run := model.TimerRun{
		RunID:       r.newID(),
		PresetID:    preset.ID,
		Title:       preset.Title,
		DurationSec: preset.DurationSec,
		StartedAt:   now,
	}
	r.runs = append([]model.TimerRun{run}, r.runs...)
	return run, r.save(ctx)
}

// StartIfIdle starts a run unless an incomplete run for the same
// preset already exists. Used by the --start entry path so a repeated
// launch does not spawn duplicate timers.
func (r *Registry) StartIfIdle(ctx context.Context, preset model.TimerPreset, now int64) (model.TimerRun, bool, error) {
	for _, run := range r.runs {
		if run.PresetID == preset.ID && !run.Complete(now) {
			return model.TimerRun{}, false, nil
		}
	}
	run, err := r.Start(ctx, preset, now)
	if err != nil {
		return model.TimerRun{}, false, err
	}
	return run, true, nil
}

// Remove deletes the run with runID if present and persists.
func (r *Registry) Remove(ctx context.Context, runID string) error {
	next := make([]model.TimerRun, 0, len(r.runs))
	for _, run := range r.runs {
		if run.RunID == runID {
			continue
		}
		next = append(next, run)
	}
	r.runs = next
	return r.save(ctx)
}

// ClearAll empties the collection and persists.
func (r *Registry) ClearAll(ctx context.Context) error {
	r.runs = nil
	return r.save(ctx)
}

func (r *Registry) save(ctx context.Context) error {
	runs := r.runs
	if runs == nil {
		runs = []model.TimerRun{}
	}
	raw, err := json.Marshal(runs)
	if err != nil {
		return err
	}
	return r.kv.Save(ctx, RunsStorageKey, string(raw))
}
