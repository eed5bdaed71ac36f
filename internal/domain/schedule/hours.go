package schedule

import (
	"sync"

	"github.com/hairday/salon-booking/internal/httperr"
	"github.com/hairday/salon-booking/internal/timeutil"
)

// ===============================
// Hours rule
// ===============================

// HoursRule is either a bookable open/close window or a holiday with no
// bookable window at all.
type HoursRule struct {
	Open    timeutil.TimeOfDay
	Close   timeutil.TimeOfDay
	Holiday bool
}

func NewRule(open, close timeutil.TimeOfDay) (HoursRule, error) {
	r := HoursRule{Open: open, Close: close}
	if err := r.Validate(); err != nil {
		return HoursRule{}, err
	}
	return r, nil
}

func Holiday() HoursRule {
	return HoursRule{Holiday: true}
}

func (r HoursRule) Validate() error {
	if r.Holiday {
		return nil
	}
	if r.Open >= r.Close {
		return httperr.ErrBusiness("open_after_close")
	}
	return nil
}

// ===============================
// Store
// ===============================

// Store resolves the effective hours for a date. A per-date override wins
// over the default rule; an override marked holiday closes the whole day.
// State is process-local and lost on restart.
type Store struct {
	mu        sync.RWMutex
	def       HoursRule
	overrides map[string]HoursRule // keyed by YYYY-MM-DD
}

func NewStore(def HoursRule) *Store {
	return &Store{
		def:       def,
		overrides: make(map[string]HoursRule),
	}
}

func (s *Store) Resolve(date string) HoursRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.overrides[date]; ok {
		return r
	}
	return s.def
}

// SetOverride replaces any prior rule for the date. Full overwrite, not merge.
func (s *Store) SetOverride(date string, rule HoursRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[date] = rule
	return nil
}

func (s *Store) SetDefault(rule HoursRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.def = rule
	return nil
}

func (s *Store) Default() HoursRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}

// Overrides returns a copy of the per-date rules for rendering.
func (s *Store) Overrides() map[string]HoursRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]HoursRule, len(s.overrides))
	for date, rule := range s.overrides {
		out[date] = rule
	}
	return out
}
