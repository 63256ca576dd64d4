package timers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/storage"
)

// NotifiedStorageKey holds the set of run ids already notified. The
// set only grows; entries for removed runs stay behind (harmless
// orphans, same as the original client).
const NotifiedStorageKey = "ddtd_timers_completed_v1"

// NotificationTitle heads every completion notification; the run's
// snapshot title goes in the body.
const NotificationTitle = "ddtd timer complete"

// Dispatcher scans the registry once per tick and fires at most one
// notification per completed run id, across restarts, by persisting
// the notified set. With notifications disabled the scan neither
// sends nor marks, so enabling them later still delivers one
// notification for a run that completed in the meantime.
type Dispatcher struct {
	reg      *Registry
	kv       storage.Store
	log      *slog.Logger
	notifier Notifier
	enabled  bool
	notified map[string]bool
}

func NewDispatcher(reg *Registry, kv storage.Store, notifier Notifier, enabled bool, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Dispatcher{
		reg:      reg,
		kv:       kv,
		log:      log,
		notifier: notifier,
		enabled:  enabled,
		notified: make(map[string]bool),
	}
}

// Load reads the persisted notified set, starting empty on any
// failure.
func (d *Dispatcher) Load(ctx context.Context) {
	d.notified = make(map[string]bool)
	raw, ok, err := d.kv.Load(ctx, NotifiedStorageKey)
	if err != nil {
		d.log.Warn("notified set load failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	var set map[string]bool
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		d.log.Warn("notified set corrupt, starting empty", "error", err)
		return
	}
	d.notified = set
}

// Tick fires one notification for every run that has completed by now
// and has not been notified yet, then persists the updated set. It
// returns the runs notified on this tick.
func (d *Dispatcher) Tick(ctx context.Context, now int64) []model.TimerRun {
	if !d.enabled {
		return nil
	}
	var fired []model.TimerRun
	for _, run := range d.reg.Runs() {
		if !run.Complete(now) || d.notified[run.RunID] {
			continue
		}
		if err := d.notifier.Send(NotificationTitle, run.Title); err != nil {
			d.log.Debug("notification send failed", "run", run.RunID, "error", err)
		}
		d.notified[run.RunID] = true
		fired = append(fired, run)
	}
	if len(fired) > 0 {
		if err := d.save(ctx); err != nil {
			d.log.Warn("notified set save failed", "error", err)
		}
	}
	return fired
}

func (d *Dispatcher) save(ctx context.Context) error {
	raw, err := json.Marshal(d.notified)
	if err != nil {
		return err
	}
	return d.kv.Save(ctx, NotifiedStorageKey, string(raw))
}
