// Package narrative renders the templated plain-text explanation of an
// analysis. It is the fallback text path: the numbers drive fixed clauses,
// nothing here is generated.
package narrative

import (
	"fmt"
	"math"
	"strings"
	"text/template"

	"treadscope/internal/analysis"
	"treadscope/internal/timetravel"
	"treadscope/internal/tread"
	"treadscope/internal/weather"
)

var summaryTmpl = template.Must(template.New("summary").Parse(
	`Your tread reads as {{.Bucket}} ({{.DepthMin}}/32"–{{.DepthMax}}/32", {{.ConfidencePct}}% confidence). ` +
		`{{.Condition}} At the projected wear rate you have about {{.Months}} months before the tread reaches the legal minimum. ` +
		`Current health score: {{.Score}}/100, risk level {{.Risk}}.{{if .WeatherNote}} {{.WeatherNote}}{{end}}`,
))

type summaryData struct {
	Bucket        string
	DepthMin      float64
	DepthMax      float64
	ConfidencePct int
	Condition     string
	Months        int
	Score         int
	Risk          string
	WeatherNote   string
}

// Explain renders the explanation for an analysis at the given time-travel
// state.
func Explain(res *analysis.Result, st timetravel.State) (string, error) {
	data := summaryData{
		Bucket:        res.Estimate.Bucket.String(),
		DepthMin:      res.Estimate.Depth.Min,
		DepthMax:      res.Estimate.Depth.Max,
		ConfidencePct: int(math.Round(res.Estimate.Confidence * 100)),
		Condition:     conditionClause(res.Estimate.Bucket),
		Months:        st.TotalMonths,
		Score:         st.Score,
		Risk:          st.Risk.String(),
	}
	if st.WeatherMode != weather.ModeDry {
		data.WeatherNote = st.RiskDescription
	}

	var b strings.Builder
	if err := summaryTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("narrative: rendering summary: %w", err)
	}
	return b.String(), nil
}

func conditionClause(b tread.Bucket) string {
	switch b {
	case tread.BucketNew:
		return "The tread pattern still shows full-depth grooves and crisp sipes."
	case tread.BucketHealthy:
		return "The tread is wearing normally with plenty of groove depth left."
	case tread.BucketModerate:
		return "Wear is visible: grooves are noticeably shallower than new."
	case tread.BucketLow:
		return "The tread is low; plan for replacement in the near term."
	default:
		return "The tread is at or near the wear bars and needs attention now."
	}
}
