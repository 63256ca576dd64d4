// Package tasks keeps per-period chore completion state. Completions
// are namespaced by period key (game day or game week), so marking a
// task done today says nothing about yesterday or tomorrow.
package tasks

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sort"

	"github.com/jihokang/ddtd/internal/model"
	"github.com/jihokang/ddtd/internal/storage"
)

// StorageKey is the persisted record's key, carried over from the
// original client so the record shape stays recognizable.
const StorageKey = "ddtd_tasks_v1"

// RecordVersion is bumped only on incompatible shape changes; a
// mismatch on load discards the stored record.
const RecordVersion = 1

// Record maps group -> period key -> completed task ids. Old period
// keys are never pruned; the record grows with play history.
type Record struct {
	Version int                 `json:"version"`
	Daily   map[string][]string `json:"daily"`
	Weekly  map[string][]string `json:"weekly"`
}

func emptyRecord() Record {
	return Record{
		Version: RecordVersion,
		Daily:   make(map[string][]string),
		Weekly:  make(map[string][]string),
	}
}

// Store is the period-scoped completion store. It holds the working
// record in memory and writes the whole record back after every
// mutation. Load never fails: absent, corrupt, or mismatched state is
// replaced with a fresh empty record.
type Store struct {
	kv  storage.Store
	log *slog.Logger
	rec Record
}

func NewStore(kv storage.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, log: log, rec: emptyRecord()}
}

// Load reads the persisted record, substituting a fresh empty record
// on any failure.
func (s *Store) Load(ctx context.Context) {
	s.rec = emptyRecord()
	raw, ok, err := s.kv.Load(ctx, StorageKey)
	if err != nil {
		s.log.Warn("task record load failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.log.Warn("task record corrupt, starting empty", "error", err)
		return
	}
	if rec.Version != RecordVersion {
		s.log.Warn("task record version mismatch, starting empty", "version", rec.Version)
		return
	}
	if rec.Daily == nil {
		rec.Daily = make(map[string][]string)
	}
	if rec.Weekly == nil {
		rec.Weekly = make(map[string][]string)
	}
	s.rec = rec
}

// Save persists the full record, overwriting prior content.
func (s *Store) Save(ctx context.Context) error {
	raw, err := json.Marshal(s.rec)
	if err != nil {
		return err
	}
	return s.kv.Save(ctx, StorageKey, string(raw))
}

func (s *Store) bucket(group model.Group) map[string][]string {
	if group == model.GroupWeekly {
		return s.rec.Weekly
	}
	return s.rec.Daily
}

// DoneIDs returns the completed task ids for (group, periodKey),
// sorted for stable iteration.
func (s *Store) DoneIDs(group model.Group, periodKey string) []string {
	ids := s.bucket(group)[periodKey]
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}

func (s *Store) IsDone(group model.Group, periodKey, taskID string) bool {
	for _, id := range s.bucket(group)[periodKey] {
		if id == taskID {
			return true
		}
	}
	return false
}

func (s *Store) DoneCount(group model.Group, periodKey string) int {
	return len(s.bucket(group)[periodKey])
}

// Toggle flips membership of taskID in the (group, periodKey) set and
// persists the record. Toggling twice restores the original set.
func (s *Store) Toggle(ctx context.Context, group model.Group, periodKey, taskID string) error {
	bucket := s.bucket(group)
	ids := bucket[periodKey]
	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == taskID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, taskID)
		sort.Strings(next)
	}
	bucket[periodKey] = next
	return s.Save(ctx)
}

// Clear empties the set for (group, periodKey) only; other period
// keys and the other group are untouched.
func (s *Store) Clear(ctx context.Context, group model.Group, periodKey string) error {
	s.bucket(group)[periodKey] = []string{}
	return s.Save(ctx)
}

// Progress returns round(done/total*100), or 0 when total is 0.
func (s *Store) Progress(group model.Group, periodKey string, total int) int {
	if total <= 0 {
		return 0
	}
	done := s.DoneCount(group, periodKey)
	return int(math.Round(float64(done) / float64(total) * 100))
}
