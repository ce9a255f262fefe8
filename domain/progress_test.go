package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProgress_Advance(t *testing.T) {
	req := require.New(t)
	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	p := Progress{ID: "p-1", CurrentStepID: "S0", StartedAt: start, Version: 1, Status: InProgress}

	// When a choice leads to another step after three prior choices
	next := p.Advance("S0", "S1", 3, start.Add(time.Minute))

	// Then the version moves and the rate follows the choice count
	req.Equal(2, next.Version)
	req.Equal("S1", next.CurrentStepID)
	req.Equal([]string{"S0"}, next.CompletedSteps)
	req.Equal(InProgress, next.Status)
	req.InDelta(0.3, next.CompletionRate, 1e-9)
	req.Empty(p.CompletedSteps)
	req.Equal(1, p.Version)

	// When the rate would exceed the ceiling
	long := next.Advance("S1", "S2", 42, start.Add(2*time.Minute))
	req.InDelta(0.9, long.CompletionRate, 1e-9)

	// When the campaign ends
	done := long.Advance("S2", "", 43, start.Add(3*time.Minute))
	req.Equal(Completed, done.Status)
	req.Equal(1.0, done.CompletionRate)
	req.Equal([]string{"S0", "S1", "S2"}, done.CompletedSteps)
	req.Equal(4, done.Version)
}

func TestChangeSummary(t *testing.T) {
	req := require.New(t)
	req.Equal("STR +5 (10 → 15)", ChangeSummary("STR", 5, 10, 15))
	req.Equal("HP -999 (5 → 0)", ChangeSummary("HP", -999, 5, 0))
	req.Equal("LUCK 0 (3 → 3)", ChangeSummary("LUCK", 0, 3, 3))
}
