package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seant15/gamify-timesheet/internal/engine"
)

var testTasks = []engine.Task{
	{Title: "Quarterly report", DurationMinutes: 90},
	{Title: "1:1 with Sam", DurationMinutes: 30},
}

var testPillar = engine.PillarDefinition{ID: "p1", Title: "Team & Mgmt", Description: "Meetings & reports"}

func TestDailySummarySuccess(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(engine.DailySummary{
			FocusAdvice:    "Batch your meetings back to back.",
			SuggestedTasks: []string{"Prep agenda", "Clear inbox"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	summary := c.DailySummary(context.Background(), engine.Monday, testPillar, testTasks)

	assert.Equal(t, "Batch your meetings back to back.", summary.FocusAdvice)
	assert.Equal(t, []string{"Prep agenda", "Clear inbox"}, summary.SuggestedTasks)

	// The request carries the day name and task summaries.
	assert.Equal(t, "Monday", got.Day)
	assert.Equal(t, "Team & Mgmt", got.Pillar)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Quarterly report", got.Tasks[0].Title)
	assert.Equal(t, 90, got.Tasks[0].DurationMinutes)
}

func TestDailySummaryFallbacks(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"unparseable body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
		{"empty advice", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"focusAdvice":"","suggestedTasks":[]}`))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, zap.NewNop())
			summary := client.DailySummary(context.Background(), engine.Friday, testPillar, nil)
			assert.Equal(t, Fallback(), summary, "failures must be masked with the static fallback")
		})
	}
}

func TestDailySummaryUnreachableEndpoint(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/advice", 100*time.Millisecond, zap.NewNop())
	summary := c.DailySummary(context.Background(), engine.Sunday, testPillar, nil)
	assert.Equal(t, Fallback(), summary)
}

func TestDailySummaryNoEndpointConfigured(t *testing.T) {
	c := NewClient("", time.Second, zap.NewNop())
	summary := c.DailySummary(context.Background(), engine.Monday, testPillar, testTasks)
	assert.Equal(t, Fallback(), summary)
}

func TestFallbackShape(t *testing.T) {
	fb := Fallback()
	assert.NotEmpty(t, fb.FocusAdvice)
	assert.Len(t, fb.SuggestedTasks, 3)
}
