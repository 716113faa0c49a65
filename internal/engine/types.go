package engine

import (
	"fmt"
	"strings"
	"time"
)

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// WeekDays is the fixed display order of the grid columns.
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Day) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// ParseDay accepts full day names or unambiguous prefixes ("mon", "tue", …),
// case-insensitively.
func ParseDay(input string) (Day, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", fmt.Errorf("day is required")
	}
	for _, d := range WeekDays {
		if strings.HasPrefix(strings.ToLower(string(d)), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day: %q", input)
}

// PillarDefinition is a category of effort with a credit-per-hour rate.
// Color is a presentation key only; the ledger never reads it.
type PillarDefinition struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	PointsPerHour int    `json:"pointsPerHour"`
}

// Task is a time-boxed activity on the weekly grid. PillarID is a weak
// reference: the pillar may no longer exist, in which case the task is kept
// but earns nothing.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Day             Day      `json:"day"`
	PillarID        string   `json:"pillarId"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Completed       bool     `json:"completed"`
	Tags            []string `json:"tags"`
	Notes           string   `json:"notes,omitempty"`
	Category        string   `json:"category,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
}

// Reward is a store item purchasable with credits. Claimed is a transient
// display flag that auto-reverts shortly after a purchase; it carries no
// durable meaning.
type Reward struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Cost    int    `json:"cost"`
	Icon    string `json:"icon"`
	Claimed bool   `json:"claimed"`
}

type UserStats struct {
	TotalCredits     int `json:"totalCredits"`
	LifetimeEarnings int `json:"lifetimeEarnings"`
	Level            int `json:"level"`
}

// DailySummary is what the advice gateway produces for a day.
type DailySummary struct {
	FocusAdvice    string   `json:"focusAdvice"`
	SuggestedTasks []string `json:"suggestedTasks"`
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
