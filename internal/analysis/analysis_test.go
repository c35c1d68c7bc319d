package analysis

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treadscope/internal/wear"
	"treadscope/pkg/pixel"
)

var anchor = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func testPhoto(t *testing.T) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(64, 64)
	require.NoError(t, err)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(180)
			if x%8 < 2 {
				v = 30
			}
			buf.SetRGBA(x, y, v, v, v, 255)
		}
	}
	return buf
}

func TestAnalyzeProducesConsistentBundle(t *testing.T) {
	a := NewAnalyzerAt(func() time.Time { return anchor })
	res, err := a.Analyze(testPhoto(t), wear.Profile{MilesPerYear: 12000})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, anchor, res.CreatedAt)
	assert.Equal(t, res.Estimate.Bucket.DepthRange(), res.Estimate.Depth)
	assert.Equal(t, res.Estimate.Depth.Mid(), res.Prediction.CurrentDepth32)
	assert.GreaterOrEqual(t, res.Estimate.Confidence, 0.55)
	assert.LessOrEqual(t, res.Estimate.Confidence, 0.90)
}

func TestAnalyzeRejectsBadBuffer(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.Analyze(nil, wear.Profile{MilesPerYear: 12000})
	assert.ErrorIs(t, err, pixel.ErrInvalidImage)
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	a := NewAnalyzerAt(func() time.Time { return anchor })
	res, err := a.Analyze(testPhoto(t), wear.Profile{MilesPerYear: 12000})
	require.NoError(t, err)

	s.Put(res)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	assert.Same(t, res, got)

	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	s.Delete(res.ID)
	assert.Equal(t, 0, s.Len())
	_, err = s.Get(res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
