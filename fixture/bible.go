package fixture

import "github.com/churchweb/mockapi/domain"

// SaveBiblePlan stores a generated plan under its day count and remembers it
// as the most recent one.
func (s *Store) SaveBiblePlan(plan domain.BiblePlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.biblePlans[plan.Days] = plan
	s.lastBiblePlan = &plan
}

func (s *Store) BiblePlanByDays(days int) (domain.BiblePlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.biblePlans[days]
	return plan, ok
}

// LastBiblePlan returns the most recently generated plan, if any.
func (s *Store) LastBiblePlan() (domain.BiblePlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastBiblePlan == nil {
		return domain.BiblePlan{}, false
	}
	return *s.lastBiblePlan, true
}
