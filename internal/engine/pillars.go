package engine

// DefaultPillars is the starting catalog. Rates are credits per hour.
func DefaultPillars() []PillarDefinition {
	return []PillarDefinition{
		{ID: "p1", Title: "Team & Mgmt", Category: "Management", Description: "Meetings & reports", Color: "indigo", PointsPerHour: 100},
		{ID: "p2", Title: "Deep Work", Category: "Creative", Description: "Strategy & Creative", Color: "purple", PointsPerHour: 200},
		{ID: "p3", Title: "Sales & Growth", Category: "Revenue", Description: "Outreach & BizDev", Color: "emerald", PointsPerHour: 150},
		{ID: "p4", Title: "Admin/Overflow", Category: "Logistics", Description: "Cleanup & Logistics", Color: "amber", PointsPerHour: 80},
	}
}

func DefaultRewards() []Reward {
	return []Reward{
		{ID: "r1", Title: "Specialty Coffee", Cost: 120, Icon: "☕"},
		{ID: "r2", Title: "New Video Game", Cost: 1500, Icon: "🎮"},
		{ID: "r3", Title: "Weekend Getaway", Cost: 10000, Icon: "✈️"},
		{ID: "r4", Title: "Cheat Meal", Cost: 500, Icon: "🍕"},
		{ID: "r5", Title: "Buy a Book", Cost: 300, Icon: "📚"},
	}
}

// focusPillarByDay maps each weekday to its themed pillar. Only the advice
// context uses this; credit math always goes through the task's own pillar.
var focusPillarByDay = map[Day]string{
	Monday:    "p1",
	Tuesday:   "p2",
	Wednesday: "p3",
	Thursday:  "p2",
	Friday:    "p4",
	Saturday:  "p4",
	Sunday:    "p4",
}

// Pillar looks up a pillar by id. The second return is false when the id
// does not resolve, which the ledger treats as a zero-credit pillar.
func (s *Service) Pillar(id string) (PillarDefinition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pillarLocked(id)
}

func (s *Service) pillarLocked(id string) (PillarDefinition, bool) {
	for _, p := range s.pillars {
		if p.ID == id {
			return p, true
		}
	}
	return PillarDefinition{}, false
}

func (s *Service) Pillars() []PillarDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PillarDefinition, len(s.pillars))
	copy(out, s.pillars)
	return out
}

// FocusPillar returns the pillar themed for the given day, falling back to
// the first catalog entry when the mapping points at a removed pillar.
func (s *Service) FocusPillar(day Day) PillarDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pillarLocked(focusPillarByDay[day]); ok {
		return p
	}
	if len(s.pillars) > 0 {
		return s.pillars[0]
	}
	return PillarDefinition{}
}

// PillarPatch carries optional pillar field updates. Nil fields are left
// unchanged.
type PillarPatch struct {
	Title         *string
	Category      *string
	Description   *string
	Color         *string
	PointsPerHour *int
}

// UpdatePillar edits a catalog entry in place. A negative rate is clamped
// to zero rather than rejected. Unknown ids are a silent no-op; pillars are
// never deleted in normal operation.
func (s *Service) UpdatePillar(id string, patch PillarPatch) {
	s.mu.Lock()
	found := false
	for i := range s.pillars {
		if s.pillars[i].ID != id {
			continue
		}
		found = true
		p := &s.pillars[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		if patch.PointsPerHour != nil {
			rate := *patch.PointsPerHour
			if rate < 0 {
				rate = 0
			}
			p.PointsPerHour = rate
		}
		break
	}
	s.mu.Unlock()
	if found {
		s.commit()
	}
}
