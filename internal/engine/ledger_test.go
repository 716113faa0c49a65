package engine

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(nil, zap.NewNop(), WithRevertDelay(20*time.Millisecond))
}

// addTask creates a task directly against the service and returns it.
func addTask(t *testing.T, svc *Service, day Day, pillarID, start, end string) Task {
	t.Helper()
	task, err := svc.CreateTask(TaskDraft{
		Title:     "work block",
		Day:       day,
		PillarID:  pillarID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	return task
}

func TestLevelForEarnings(t *testing.T) {
	cases := []struct {
		earnings int
		want     int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
		{-5, 1},
	}
	for _, c := range cases {
		if got := LevelForEarnings(c.earnings); got != c.want {
			t.Errorf("LevelForEarnings(%d)=%d, want %d", c.earnings, got, c.want)
		}
	}
}

func TestTaskCredit(t *testing.T) {
	cases := []struct {
		minutes, rate, want int
	}{
		{90, 200, 300},
		{30, 100, 50},
		{50, 100, 83},
		{50, 50, 41},
		{60, 0, 0},
		{-30, 100, 0},
	}
	for _, c := range cases {
		if got := TaskCredit(c.minutes, c.rate); got != c.want {
			t.Errorf("TaskCredit(%d, %d)=%d, want %d", c.minutes, c.rate, got, c.want)
		}
	}
}

// One completed 90-minute task on Monday at 200/h claims to exactly 300
// credits and stays at level 1.
func TestClaimAwardsPendingOnce(t *testing.T) {
	svc := newTestService(t)

	task := addTask(t, svc, Monday, "p2", "09:00", "10:30")
	if task.DurationMinutes != 90 {
		t.Fatalf("duration=%d, want 90", task.DurationMinutes)
	}
	svc.ToggleCompletion(task.ID)

	if got := svc.PendingCredits(Monday); got != 300 {
		t.Fatalf("pending=%d, want 300", got)
	}

	res := svc.Claim(Monday)
	if !res.Claimed || res.Awarded != 300 {
		t.Fatalf("claim result=%+v, want awarded 300", res)
	}
	stats := svc.Stats()
	if stats.TotalCredits != 300 || stats.LifetimeEarnings != 300 || stats.Level != 1 {
		t.Fatalf("stats=%+v, want 300/300 level 1", stats)
	}
	if !svc.DayClaimed(Monday) {
		t.Fatal("Monday should be claimed")
	}
	if got := svc.PendingCredits(Monday); got != 0 {
		t.Fatalf("pending after claim=%d, want 0", got)
	}

	// Claiming again without a task mutation changes nothing.
	res = svc.Claim(Monday)
	if res.Claimed || res.Awarded != 0 {
		t.Fatalf("second claim=%+v, want no-op", res)
	}
	if got := svc.Stats(); got != stats {
		t.Fatalf("stats changed on no-op claim: %+v", got)
	}
}

// Toggling the claimed task incomplete resets the flag; re-completing and
// re-claiming awards the full amount again — the ledger remembers only the
// flag, not the prior award.
func TestReclaimAfterToggle(t *testing.T) {
	svc := newTestService(t)
	task := addTask(t, svc, Monday, "p2", "09:00", "10:30")
	svc.ToggleCompletion(task.ID)
	svc.Claim(Monday)

	svc.ToggleCompletion(task.ID)
	if svc.DayClaimed(Monday) {
		t.Fatal("toggle should reset the claimed flag")
	}
	if got := svc.PendingCredits(Monday); got != 0 {
		t.Fatalf("pending with incomplete task=%d, want 0", got)
	}

	svc.ToggleCompletion(task.ID)
	res := svc.Claim(Monday)
	if res.Awarded != 300 {
		t.Fatalf("second award=%d, want 300", res.Awarded)
	}
	stats := svc.Stats()
	if stats.TotalCredits != 600 || stats.LifetimeEarnings != 600 {
		t.Fatalf("stats=%+v, want 600/600", stats)
	}
}

// A claim that carries lifetime earnings across a level boundary lands
// directly on the new level; there is no observable intermediate state.
func TestLevelJumpInSingleClaim(t *testing.T) {
	svc := newTestService(t)
	svc.stats = UserStats{TotalCredits: 950, LifetimeEarnings: 950, Level: 1}

	// 105 minutes at 200/h = floor(1.75*200) = 350.
	task := addTask(t, svc, Tuesday, "p2", "09:00", "10:45")
	svc.ToggleCompletion(task.ID)

	res := svc.Claim(Tuesday)
	if res.Awarded != 350 {
		t.Fatalf("awarded=%d, want 350", res.Awarded)
	}
	if res.LevelBefore != 1 || res.LevelAfter != 2 || !res.LevelUp {
		t.Fatalf("level transition=%+v, want 1→2", res)
	}
	stats := svc.Stats()
	if stats.LifetimeEarnings != 1300 || stats.Level != 2 {
		t.Fatalf("stats=%+v, want lifetime 1300 level 2", stats)
	}
}

// Flooring is applied per task before summation: two 50-minute tasks at
// 50/h are 41+41=82, not floor(100min*50/h)=83.
func TestPerTaskFlooring(t *testing.T) {
	svc := newTestService(t)
	rate := 50
	svc.UpdatePillar("p4", PillarPatch{PointsPerHour: &rate})

	t1 := addTask(t, svc, Friday, "p4", "09:00", "09:50")
	t2 := addTask(t, svc, Friday, "p4", "10:00", "10:50")
	svc.ToggleCompletion(t1.ID)
	svc.ToggleCompletion(t2.ID)

	if got := svc.PendingCredits(Friday); got != 82 {
		t.Fatalf("pending=%d, want 82", got)
	}
}

func TestDanglingPillarEarnsNothing(t *testing.T) {
	svc := newTestService(t)
	task := addTask(t, svc, Wednesday, "p2", "09:00", "10:00")
	svc.ToggleCompletion(task.ID)

	ghost := "ghost"
	svc.UpdateTask(task.ID, TaskPatch{PillarID: &ghost})

	// Task is retained but contributes zero.
	if _, ok := svc.Task(task.ID); !ok {
		t.Fatal("task with dangling pillar must be kept")
	}
	if got := svc.PendingCredits(Wednesday); got != 0 {
		t.Fatalf("pending=%d, want 0 for dangling pillar", got)
	}

	res := svc.Claim(Wednesday)
	if res.Claimed {
		t.Fatal("claim must be a no-op at zero pending")
	}
}

func TestEveryMutationResetsClaim(t *testing.T) {
	svc := newTestService(t)

	claimDay := func(day Day) {
		t.Helper()
		task := addTask(t, svc, day, "p1", "09:00", "10:00")
		svc.ToggleCompletion(task.ID)
		if res := svc.Claim(day); !res.Claimed {
			t.Fatalf("setup claim on %s failed", day)
		}
	}

	// Create.
	claimDay(Monday)
	addTask(t, svc, Monday, "p1", "11:00", "12:00")
	if svc.DayClaimed(Monday) {
		t.Fatal("create must reset the claimed flag")
	}

	// Update.
	claimDay(Tuesday)
	target := addTask(t, svc, Tuesday, "p1", "11:00", "12:00")
	// Adding the task cleared the flag; the completed setup task makes the
	// day claimable again.
	if res := svc.Claim(Tuesday); !res.Claimed {
		t.Fatal("re-claim after create should succeed")
	}
	newTitle := "renamed"
	svc.UpdateTask(target.ID, TaskPatch{Title: &newTitle})
	if svc.DayClaimed(Tuesday) {
		t.Fatal("update must reset the claimed flag")
	}

	// Delete.
	claimDay(Thursday)
	victim := addTask(t, svc, Thursday, "p1", "11:00", "12:00")
	svc.ToggleCompletion(victim.ID)
	svc.Claim(Thursday)
	svc.DeleteTask(victim.ID)
	if svc.DayClaimed(Thursday) {
		t.Fatal("delete must reset the claimed flag")
	}

	// Toggle, in both directions.
	claimDay(Friday)
	toggled := addTask(t, svc, Friday, "p1", "11:00", "12:00")
	svc.ToggleCompletion(toggled.ID)
	svc.Claim(Friday)
	svc.ToggleCompletion(toggled.ID) // true → false
	if svc.DayClaimed(Friday) {
		t.Fatal("toggle to incomplete must reset the claimed flag")
	}
	svc.ToggleCompletion(toggled.ID)
	svc.Claim(Friday)
	svc.ToggleCompletion(toggled.ID)
	if svc.DayClaimed(Friday) {
		t.Fatal("toggle must reset the flag unconditionally")
	}
}
