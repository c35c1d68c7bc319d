// Package tread turns a tread photo into a coarse condition bucket with an
// honest (low) confidence score.
package tread

import (
	"errors"
	"fmt"
)

// ErrUnknownBucket is returned when a boundary hands us a bucket name that
// is not one of the five canonical buckets.
var ErrUnknownBucket = errors.New("tread: unknown bucket")

// Bucket is an ordered tread-condition category. Lower values mean better
// condition: BucketNew > BucketHealthy > ... > BucketCritical.
type Bucket int

const (
	BucketNew Bucket = iota
	BucketHealthy
	BucketModerate
	BucketLow
	BucketCritical
)

var bucketNames = [...]string{"NEW", "HEALTHY", "MODERATE", "LOW", "CRITICAL"}

func (b Bucket) String() string {
	if b < BucketNew || b > BucketCritical {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// ParseBucket maps a canonical bucket name back to its Bucket value.
// Unknown names are rejected, never defaulted.
func ParseBucket(s string) (Bucket, error) {
	for i, name := range bucketNames {
		if s == name {
			return Bucket(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBucket, s)
}

// DepthRange is a tread depth interval in 32nds of an inch.
// Invariant: 0 <= Min <= Max <= 10.
type DepthRange struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range.
func (r DepthRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// ScoreRange is the canonical health-score interval for a bucket.
type ScoreRange struct {
	Min, Max int
}

// DepthRange returns the canonical depth interval for the bucket.
func (b Bucket) DepthRange() DepthRange {
	switch b {
	case BucketNew:
		return DepthRange{Min: 8, Max: 10}
	case BucketHealthy:
		return DepthRange{Min: 6, Max: 8}
	case BucketModerate:
		return DepthRange{Min: 4, Max: 6}
	case BucketLow:
		return DepthRange{Min: 2, Max: 4}
	default:
		return DepthRange{Min: 0, Max: 2}
	}
}

// ScoreRange returns the canonical health-score interval for the bucket.
// Scores derived from a depth inside the bucket's depth range land inside
// this range by construction (score = depth/10 · 100).
func (b Bucket) ScoreRange() ScoreRange {
	switch b {
	case BucketNew:
		return ScoreRange{Min: 80, Max: 100}
	case BucketHealthy:
		return ScoreRange{Min: 60, Max: 80}
	case BucketModerate:
		return ScoreRange{Min: 40, Max: 60}
	case BucketLow:
		return ScoreRange{Min: 20, Max: 40}
	default:
		return ScoreRange{Min: 0, Max: 20}
	}
}

// ClampScore clamps a score into the bucket's canonical range.
func (b Bucket) ClampScore(score int) int {
	r := b.ScoreRange()
	if score < r.Min {
		return r.Min
	}
	if score > r.Max {
		return r.Max
	}
	return score
}
