package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treadscope/internal/analysis"
	"treadscope/internal/timetravel"
	"treadscope/internal/tread"
	"treadscope/internal/wear"
	"treadscope/internal/weather"
)

func testResult(t *testing.T) *analysis.Result {
	t.Helper()
	anchor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	depth := tread.BucketHealthy.DepthRange()
	return &analysis.Result{
		Estimate: tread.Estimate{
			Bucket:     tread.BucketHealthy,
			Depth:      depth,
			Confidence: 0.72,
		},
		Prediction: wear.Project(depth, wear.Profile{MilesPerYear: 12000}, anchor),
	}
}

func TestExplainMentionsTheNumbers(t *testing.T) {
	res := testResult(t)
	st := timetravel.Derive(res.Prediction, 0,
		timetravel.Toggles{WeatherMode: weather.ModeDry}, res.Prediction.WetTractionDrop)

	text, err := Explain(res, st)
	require.NoError(t, err)

	assert.Contains(t, text, "HEALTHY")
	assert.Contains(t, text, "72% confidence")
	assert.Contains(t, text, "70/100")
	assert.NotContains(t, text, "hydroplaning", "dry mode carries no weather note")
}

func TestExplainAddsWeatherNote(t *testing.T) {
	res := testResult(t)
	st := timetravel.Derive(res.Prediction, 0.9,
		timetravel.Toggles{WeatherMode: weather.ModeWet}, time.Now())

	text, err := Explain(res, st)
	require.NoError(t, err)
	assert.Contains(t, text, st.RiskDescription)
}
