package fixture

import (
	"sort"

	"github.com/churchweb/mockapi/domain"
)

// AddScheduleEntry appends a calendar event and returns its id. A missing
// end date collapses to the start date (single-day event).
func (s *Store) AddScheduleEntry(entry domain.ScheduleEntry) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextScheduleId++
	entry.Id = s.nextScheduleId
	if entry.End == "" {
		entry.End = entry.Start
	}
	s.schedules = append(s.schedules, entry)
	return entry.Id
}

// UpdateScheduleEntry merges the patch into the stored event. Fields absent
// from the patch keep their value, so an edit without an end date preserves
// the existing one.
func (s *Store) UpdateScheduleEntry(id int64, patch domain.ScheduleEntryPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schedules {
		if s.schedules[i].Id == id {
			patch.Apply(&s.schedules[i])
			s.schedules[i].Id = id
			return true
		}
	}
	return false
}

// RemoveScheduleEntry filters the id out; absent ids are a no-op.
func (s *Store) RemoveScheduleEntry(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.schedules[:0:0]
	for _, e := range s.schedules {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	s.schedules = kept
}

// Schedules returns all events sorted by start date.
func (s *Store) Schedules() []domain.ScheduleEntry {
	return s.SchedulesOverlapping("", "")
}

// SchedulesOverlapping returns events whose [start,end] interval overlaps
// the query window, sorted by start ascending. Dates are ISO strings
// (YYYY-MM-DD) so lexicographic comparison is date comparison; an empty
// bound is unbounded.
func (s *Store) SchedulesOverlapping(start, end string) []domain.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ScheduleEntry, 0, len(s.schedules))
	for _, e := range s.schedules {
		if end != "" && e.Start > end {
			continue
		}
		if start != "" && e.End < start {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
