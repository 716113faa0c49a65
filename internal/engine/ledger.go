package engine

// CreditsPerLevel is the lifetime-earnings span of one level.
const CreditsPerLevel = 1000

// LevelForEarnings returns the level implied by lifetime earnings. Level is
// always recomputed from this formula, never trusted as stored, so it can
// never drift: floor(earnings/1000) + 1.
func LevelForEarnings(earnings int) int {
	if earnings < 0 {
		earnings = 0
	}
	return earnings/CreditsPerLevel + 1
}

// TaskCredit is the credit a single completed task earns at the given rate:
// floor(duration/60 * rate). Flooring happens here, per task, before any
// summation — 90 minutes at 200/h is 300, two 50-minute tasks at 100/h are
// 83+83, not floor(100/60*100*2).
func TaskCredit(durationMinutes, pointsPerHour int) int {
	if durationMinutes < 0 || pointsPerHour < 0 {
		return 0
	}
	return durationMinutes * pointsPerHour / 60
}

// PendingCredits computes the day's unclaimed earnings from current task
// state: zero while the day is claimed, otherwise the per-task-floored sum
// over completed tasks whose pillar still resolves.
func (s *Service) PendingCredits(day Day) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLocked(day)
}

func (s *Service) pendingLocked(day Day) int {
	if s.claimed[day] {
		return 0
	}
	total := 0
	for _, t := range s.tasks {
		if t.Day != day || !t.Completed {
			continue
		}
		pillar, ok := s.pillarLocked(t.PillarID)
		if !ok {
			// Dangling pillar reference: the task is kept but earns nothing.
			continue
		}
		total += TaskCredit(t.DurationMinutes, pillar.PointsPerHour)
	}
	return total
}

// ClaimResult reports what a claim did.
type ClaimResult struct {
	Day         Day
	Awarded     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Claimed     bool
}

// Claim moves the day's pending credit into the durable balance and marks
// the day claimed. Guard: pending must be positive; otherwise nothing
// changes, which also makes a second claim on an already-claimed day a
// no-op (pending is forced to zero while the flag is set). Awards are
// append-only: nothing ever decreases TotalCredits or LifetimeEarnings.
func (s *Service) Claim(day Day) ClaimResult {
	s.mu.Lock()
	res := ClaimResult{Day: day, LevelBefore: LevelForEarnings(s.stats.LifetimeEarnings)}
	pending := s.pendingLocked(day)
	if pending <= 0 {
		res.LevelAfter = res.LevelBefore
		s.mu.Unlock()
		return res
	}
	s.stats.TotalCredits += pending
	s.stats.LifetimeEarnings += pending
	s.stats.Level = LevelForEarnings(s.stats.LifetimeEarnings)
	s.claimed[day] = true

	res.Awarded = pending
	res.LevelAfter = s.stats.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore
	res.Claimed = true
	s.mu.Unlock()
	s.commit()
	return res
}
