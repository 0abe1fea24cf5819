//go:build unit

package boundary_test

import (
	"testing"
	"time"

	"interpreting-payments/internal/domain/boundary"
	"interpreting-payments/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	normalStart = civil.Time{Hour: 9}
	normalEnd   = civil.Time{Hour: 17}
)

func analyze(t *testing.T, start, end time.Time) boundary.Result {
	t.Helper()
	res, err := boundary.NewAnalyzer().Analyze(start, end, normalStart, normalEnd, builder.TestTimezone, builder.TestTimezone)
	require.NoError(t, err)
	return res
}

func TestAnalyzer_Analyze(t *testing.T) {
	testCases := []struct {
		name             string
		start, end       time.Time
		expected         boundary.Scenario
		startBeforeNorm  bool
		endAfterNorm     bool
		crossingPointCnt int
	}{
		{name: "inside normal hours", start: builder.At(10, 0), end: builder.At(10, 30), expected: boundary.ScenarioNormal},
		{name: "exactly normal hours", start: builder.At(9, 0), end: builder.At(17, 0), expected: boundary.ScenarioNormal},
		{name: "before normal hours", start: builder.At(6, 0), end: builder.At(7, 0), expected: boundary.ScenarioPeak, startBeforeNorm: true},
		{name: "ends at opening", start: builder.At(8, 0), end: builder.At(9, 0), expected: boundary.ScenarioPeak, startBeforeNorm: true},
		{name: "after normal hours", start: builder.At(18, 0), end: builder.At(19, 0), expected: boundary.ScenarioPeak, endAfterNorm: true},
		{name: "starts at closing", start: builder.At(17, 0), end: builder.At(18, 0), expected: boundary.ScenarioPeak, endAfterNorm: true},
		{name: "crosses opening", start: builder.At(8, 45), end: builder.At(10, 15), expected: boundary.ScenarioCrossBoundary, startBeforeNorm: true, crossingPointCnt: 1},
		{name: "crosses closing", start: builder.At(16, 30), end: builder.At(17, 30), expected: boundary.ScenarioCrossBoundary, endAfterNorm: true, crossingPointCnt: 1},
		{name: "straddles both boundaries", start: builder.At(8, 0), end: builder.At(18, 0), expected: boundary.ScenarioNormal, startBeforeNorm: true, endAfterNorm: true, crossingPointCnt: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := analyze(t, tc.start, tc.end)

			assert.Equal(t, tc.expected, res.Client.Scenario)
			assert.Equal(t, tc.expected, res.Interpreter.Scenario)
			assert.False(t, res.RequiresCrossRateLogic)
			assert.Equal(t, tc.startBeforeNorm, res.Client.IsStartBeforeNormal)
			assert.Equal(t, tc.endAfterNorm, res.Client.IsEndAfterNormal)
			assert.True(t, res.Client.NormalHoursStart.Equal(builder.At(9, 0)))
			assert.True(t, res.Client.NormalHoursEnd.Equal(builder.At(17, 0)))
			assert.Len(t, res.Client.CrossingPoints(), tc.crossingPointCnt)
		})
	}
}

func TestAnalyzer_ClassificationIsExhaustive(t *testing.T) {
	open, closing := builder.At(9, 0), builder.At(17, 0)
	straddles := func(start, end, b time.Time) bool { return start.Before(b) && end.After(b) }

	for startMin := 0; startMin < 24*60; startMin += 15 {
		for duration := 15; duration <= 12*60; duration += 45 {
			start := builder.At(0, 0).Add(time.Duration(startMin) * time.Minute)
			end := start.Add(time.Duration(duration) * time.Minute)
			if end.After(builder.At(23, 59)) {
				continue
			}

			res := analyze(t, start, end)
			got := res.Client.Scenario
			require.Contains(t, []boundary.Scenario{boundary.ScenarioNormal, boundary.ScenarioPeak, boundary.ScenarioCrossBoundary}, got)

			exactlyOne := straddles(start, end, open) != straddles(start, end, closing)
			assert.Equal(t, exactlyOne, got == boundary.ScenarioCrossBoundary,
				"start %s duration %d classified %s", start.Format("15:04"), duration, got)
		}
	}
}

func TestAnalyzer_TimezoneSkew(t *testing.T) {
	// 10:00 in Sydney (UTC+11 in March) is 08:00 in Tokyo.
	res, err := boundary.NewAnalyzer().Analyze(builder.At(10, 0), builder.At(10, 30), normalStart, normalEnd, builder.TestTimezone, "Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, boundary.ScenarioNormal, res.Client.Scenario)
	assert.Equal(t, boundary.ScenarioPeak, res.Interpreter.Scenario)
	assert.True(t, res.RequiresCrossRateLogic)
	assert.Equal(t, boundary.ModeNormal, res.Client.ModeAt(builder.At(10, 15)))
	assert.Equal(t, boundary.ModePeak, res.Interpreter.ModeAt(builder.At(10, 15)))
}

func TestAnalyzer_ModeAt(t *testing.T) {
	a := boundary.NewAnalyzer()

	testCases := []struct {
		name     string
		at       time.Time
		tz       string
		expected boundary.Mode
	}{
		{name: "inside normal hours", at: builder.At(10, 0), tz: builder.TestTimezone, expected: boundary.ModeNormal},
		{name: "at closing", at: builder.At(17, 0), tz: builder.TestTimezone, expected: boundary.ModePeak},
		{name: "at opening", at: builder.At(9, 0), tz: builder.TestTimezone, expected: boundary.ModeNormal},
		{name: "before opening in another timezone", at: builder.At(10, 0), tz: "Asia/Tokyo", expected: boundary.ModePeak},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := a.ModeAt(tc.at, normalStart, normalEnd, tc.tz)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mode)
		})
	}

	_, err := a.ModeAt(builder.At(10, 0), normalStart, normalEnd, "")
	assert.ErrorIs(t, err, boundary.ErrInvalidTimezone)
}

func TestAnalyzer_Errors(t *testing.T) {
	a := boundary.NewAnalyzer()

	t.Run("end not after start", func(t *testing.T) {
		_, err := a.Analyze(builder.At(10, 0), builder.At(10, 0), normalStart, normalEnd, builder.TestTimezone, builder.TestTimezone)
		assert.ErrorIs(t, err, boundary.ErrInvalidInterval)
	})

	t.Run("empty timezone", func(t *testing.T) {
		_, err := a.Analyze(builder.At(10, 0), builder.At(11, 0), normalStart, normalEnd, builder.TestTimezone, "")
		assert.ErrorIs(t, err, boundary.ErrInvalidTimezone)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := a.Analyze(builder.At(10, 0), builder.At(11, 0), normalStart, normalEnd, "Mars/Olympus", builder.TestTimezone)
		assert.ErrorIs(t, err, boundary.ErrInvalidTimezone)
	})
}

func TestMode_Qualifier(t *testing.T) {
	assert.Equal(t, "standard-hours", boundary.ModeNormal.Qualifier().String())
	assert.Equal(t, "after-hours", boundary.ModePeak.Qualifier().String())
}
