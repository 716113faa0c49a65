package engine

import (
	"fmt"
	"strings"

	"github.com/seant15/gamify-timesheet/internal/grid"
)

// FallbackDurationMinutes is substituted when a task's time range computes
// to a zero, negative or unparseable duration. Bad ranges are recovered,
// never rejected.
const FallbackDurationMinutes = 60

// TaskDraft is a candidate task before it is committed: either produced by
// a drag release on the grid or filled in manually. When DurationMinutes is
// set and EndTime is empty, the end time is synthesized from the start.
type TaskDraft struct {
	Title           string
	Day             Day
	PillarID        string
	StartTime       string
	EndTime         string
	DurationMinutes int
	Tags            []string
	Notes           string
	Category        string
}

// DraftFromDrop builds the draft for a pillar dropped onto a day column at
// the given vertical pixel offset. The default end time is one hour after
// the drop point, minute unchanged.
func (s *Service) DraftFromDrop(pillarID string, day Day, offsetPx float64) (TaskDraft, error) {
	pillar, ok := s.Pillar(pillarID)
	if !ok {
		return TaskDraft{}, fmt.Errorf("unknown pillar: %q", pillarID)
	}
	if !day.IsValid() {
		return TaskDraft{}, fmt.Errorf("invalid day: %q", day)
	}
	start := s.layout.TimeAtOffset(offsetPx)
	end, err := grid.AddOneHour(start)
	if err != nil {
		return TaskDraft{}, err
	}
	return TaskDraft{
		Title:     pillar.Title + " Block",
		Day:       day,
		PillarID:  pillar.ID,
		StartTime: start,
		EndTime:   end,
		Category:  pillar.Category,
	}, nil
}

// effectiveDuration applies the fallback rule to a time range.
func effectiveDuration(start, end string) int {
	d, err := grid.DurationMinutes(start, end)
	if err != nil || d <= 0 {
		return FallbackDurationMinutes
	}
	return d
}

// CreateTask commits a draft: assigns a fresh id, stamps creation time,
// derives the duration and clears the day's claimed flag.
func (s *Service) CreateTask(draft TaskDraft) (Task, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return Task{}, fmt.Errorf("title is required")
	}
	if !draft.Day.IsValid() {
		return Task{}, fmt.Errorf("invalid day: %q", draft.Day)
	}
	if draft.PillarID == "" {
		return Task{}, fmt.Errorf("pillar is required")
	}

	end := draft.EndTime
	if end == "" && draft.DurationMinutes > 0 {
		start, err := grid.ParseClock(draft.StartTime)
		if err != nil {
			return Task{}, err
		}
		end = grid.ClockFromMinutes(start + draft.DurationMinutes)
	}

	t := Task{
		ID:              newID(),
		Title:           title,
		Day:             draft.Day,
		PillarID:        draft.PillarID,
		StartTime:       draft.StartTime,
		EndTime:         end,
		DurationMinutes: effectiveDuration(draft.StartTime, end),
		Tags:            draft.Tags,
		Notes:           draft.Notes,
		Category:        draft.Category,
		CreatedAt:       nowMillis(),
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.claimed[t.Day] = false
	s.mu.Unlock()
	s.commit()
	return t, nil
}

// TaskPatch carries optional task field updates; nil fields keep the
// existing value.
type TaskPatch struct {
	Title     *string
	Day       *Day
	PillarID  *string
	StartTime *string
	EndTime   *string
	Tags      *[]string
	Notes     *string
}

// UpdateTask merges a patch into the task with the given id and recomputes
// the duration from the possibly-patched time range. Unknown ids are a
// silent no-op. The claimed flag is cleared for the patched day when the
// task moves, otherwise for its existing day.
func (s *Service) UpdateTask(id string, patch TaskPatch) {
	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	t := &s.tasks[idx]
	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Day != nil && patch.Day.IsValid() {
		t.Day = *patch.Day
	}
	if patch.PillarID != nil {
		t.PillarID = *patch.PillarID
	}
	if patch.StartTime != nil {
		t.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		t.EndTime = *patch.EndTime
	}
	if patch.Tags != nil {
		t.Tags = *patch.Tags
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	t.DurationMinutes = effectiveDuration(t.StartTime, t.EndTime)
	s.claimed[t.Day] = false
	s.mu.Unlock()
	s.commit()
}

// DeleteTask removes the task and clears its day's claimed flag. Unknown
// ids are a silent no-op.
func (s *Service) DeleteTask(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	day := s.tasks[idx].Day
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.claimed[day] = false
	s.mu.Unlock()
	s.commit()
}

// ToggleCompletion flips the completion flag and clears the day's claimed
// flag unconditionally, in both directions. Unknown ids are a silent no-op.
func (s *Service) ToggleCompletion(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	s.claimed[s.tasks[idx].Day] = false
	s.mu.Unlock()
	s.commit()
}

// Task returns a copy of the task with the given id.
func (s *Service) Task(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Tasks returns a copy of all tasks in creation order.
func (s *Service) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksForDay returns a copy of the day's tasks in creation order.
func (s *Service) TasksForDay(day Day) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Task
	for _, t := range s.tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}
