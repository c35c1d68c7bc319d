// Package analysis ties the per-photo pipeline together: quality assessment,
// tread classification, and wear projection in one pass, with an in-memory
// store so the time-travel endpoints can revisit a photo.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"treadscope/internal/quality"
	"treadscope/internal/tread"
	"treadscope/internal/wear"
	"treadscope/pkg/pixel"
)

// Result is the complete analysis bundle for one uploaded photo.
type Result struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Quality    quality.Quality
	Estimate   tread.Estimate
	Prediction wear.Prediction
	Photo      *pixel.Buffer
}

// Analyzer runs the full analysis pipeline. The clock is injectable so
// tests can pin the timeline anchor.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer returns an Analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerAt returns an Analyzer with a fixed clock, for tests.
func NewAnalyzerAt(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze runs quality assessment, classification, and wear projection on
// one photo. The buffer is retained in the result; the caller must not
// mutate it afterwards.
func (a *Analyzer) Analyze(buf *pixel.Buffer, prof wear.Profile) (*Result, error) {
	q, err := quality.Assess(buf)
	if err != nil {
		return nil, err
	}

	est, err := tread.Classify(buf, q)
	if err != nil {
		return nil, err
	}

	now := a.now()
	return &Result{
		ID:         uuid.New(),
		CreatedAt:  now,
		Quality:    q,
		Estimate:   est,
		Prediction: wear.Project(est.Depth, prof, now),
		Photo:      buf,
	}, nil
}
