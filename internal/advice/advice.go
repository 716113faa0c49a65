// Package advice talks to the remote coaching endpoint. The remote call is
// best-effort: any transport, status or decode failure is logged and masked
// with fixed fallback content, so callers never observe an error here.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seant15/gamify-timesheet/internal/engine"
)

// Fallback returns the static summary substituted when the gateway fails.
func Fallback() engine.DailySummary {
	return engine.DailySummary{
		FocusAdvice: "Focus on your pillar goals today to maximize efficiency.",
		SuggestedTasks: []string{
			"Review pending items",
			"Plan next major milestone",
			"Check communication channels",
		},
	}
}

type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

func NewClient(endpoint string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

type taskSummary struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
}

type request struct {
	Day         string        `json:"day"`
	Pillar      string        `json:"pillar"`
	PillarFocus string        `json:"pillarFocus"`
	Tasks       []taskSummary `json:"tasks"`
}

// DailySummary asks the gateway for day-scoped coaching text. Concurrent
// calls are allowed; callers apply whichever resolves last. The returned
// summary is always usable.
func (c *Client) DailySummary(ctx context.Context, day engine.Day, pillar engine.PillarDefinition, tasks []engine.Task) engine.DailySummary {
	summary, err := c.fetch(ctx, day, pillar, tasks)
	if err != nil {
		c.log.Warn("advice gateway failed, using fallback",
			zap.String("day", string(day)),
			zap.Error(err))
		return Fallback()
	}
	return summary
}

func (c *Client) fetch(ctx context.Context, day engine.Day, pillar engine.PillarDefinition, tasks []engine.Task) (engine.DailySummary, error) {
	if c.endpoint == "" {
		return engine.DailySummary{}, fmt.Errorf("no endpoint configured")
	}

	req := request{Day: string(day), Pillar: pillar.Title, PillarFocus: pillar.Description}
	for _, t := range tasks {
		req.Tasks = append(req.Tasks, taskSummary{Title: t.Title, DurationMinutes: t.DurationMinutes})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return engine.DailySummary{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return engine.DailySummary{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return engine.DailySummary{}, fmt.Errorf("call gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return engine.DailySummary{}, fmt.Errorf("gateway status %d", resp.StatusCode)
	}

	var summary engine.DailySummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return engine.DailySummary{}, fmt.Errorf("decode response: %w", err)
	}
	if summary.FocusAdvice == "" {
		return engine.DailySummary{}, fmt.Errorf("empty advice in response")
	}
	return summary, nil
}
