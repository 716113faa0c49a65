package engine

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// PurchaseResult reports what a purchase did. Guard failures (unknown id,
// unaffordable, already marked claimed) are not errors; Purchased is simply
// false and nothing changed.
type PurchaseResult struct {
	Purchased bool
	Reward    Reward
	Remaining int
}

// Purchase debits the reward's cost from the balance and marks the reward
// claimed for display. The flag reverts automatically after the configured
// delay; re-purchasing before it reverts is blocked by the claimed guard.
func (s *Service) Purchase(id string) PurchaseResult {
	s.mu.Lock()
	idx := -1
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.rewards[idx].Claimed || s.stats.TotalCredits < s.rewards[idx].Cost {
		res := PurchaseResult{Remaining: s.stats.TotalCredits}
		if idx >= 0 {
			res.Reward = s.rewards[idx]
		}
		s.mu.Unlock()
		return res
	}

	s.stats.TotalCredits -= s.rewards[idx].Cost
	s.rewards[idx].Claimed = true
	res := PurchaseResult{Purchased: true, Reward: s.rewards[idx], Remaining: s.stats.TotalCredits}
	s.scheduleRevertLocked(id)
	s.mu.Unlock()
	s.commit()

	s.log.Info("reward purchased",
		zap.String("reward", res.Reward.Title),
		zap.Int("cost", res.Reward.Cost),
		zap.Int("remaining", res.Remaining))
	return res
}

// scheduleRevertLocked arms the display-flag reversion for a reward. One
// timer per reward id; arming replaces any previous timer. The callback
// re-checks identity and claimed state before acting so a fire against a
// deleted or already-reverted reward is ignored rather than applied to
// stale state.
func (s *Service) scheduleRevertLocked(id string) {
	if t, ok := s.revertTimers[id]; ok {
		t.Stop()
	}
	s.revertTimers[id] = time.AfterFunc(s.revertDelay, func() {
		s.revertClaim(id)
	})
}

func (s *Service) revertClaim(id string) {
	s.mu.Lock()
	delete(s.revertTimers, id)
	idx := -1
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || !s.rewards[idx].Claimed {
		s.mu.Unlock()
		return
	}
	s.rewards[idx].Claimed = false
	s.mu.Unlock()
	s.commit()
}

// AddReward appends a new store item.
func (s *Service) AddReward(title string, cost int, icon string) (Reward, bool) {
	title = strings.TrimSpace(title)
	if title == "" || cost < 0 {
		return Reward{}, false
	}
	if icon == "" {
		icon = "🎁"
	}
	r := Reward{ID: newID(), Title: title, Cost: cost, Icon: icon}
	s.mu.Lock()
	s.rewards = append(s.rewards, r)
	s.mu.Unlock()
	s.commit()
	return r, true
}

// DeleteReward removes a store item and cancels any pending flag reversion
// for it. Unknown ids are a silent no-op. No refund: the claimed flag is
// display-only and the debit already happened.
func (s *Service) DeleteReward(id string) {
	s.mu.Lock()
	if t, ok := s.revertTimers[id]; ok {
		t.Stop()
		delete(s.revertTimers, id)
	}
	idx := -1
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.rewards = append(s.rewards[:idx], s.rewards[idx+1:]...)
	s.mu.Unlock()
	s.commit()
}

// Rewards returns a copy of the store catalog.
func (s *Service) Rewards() []Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reward, len(s.rewards))
	copy(out, s.rewards)
	return out
}

// RewardByID returns a copy of the reward with the given id.
func (s *Service) RewardByID(id string) (Reward, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
