package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveSweep(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{name: "empty", fraction: 0, want: 0},
		{name: "half", fraction: 0.5, want: 125},
		{name: "full", fraction: 1, want: 250},
		{name: "negative clamps", fraction: -0.3, want: 0},
		{name: "overflow clamps", fraction: 1.7, want: 250},
		{name: "nan", fraction: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ActiveSweep(tt.fraction), 1e-9)
		})
	}
}

func TestHandleAngle(t *testing.T) {
	assert.InDelta(t, -215.0, HandleAngle(0), 1e-9)
	assert.InDelta(t, 35.0, HandleAngle(1), 1e-9)
	assert.InDelta(t, -90.0, HandleAngle(0.5), 1e-9)
}

func TestHandlePosition(t *testing.T) {
	const w = 200.0

	// Half way round the track is straight up.
	top := HandlePosition(w, w, 0.5)
	assert.InDelta(t, 100, top.X, 1e-9)
	assert.InDelta(t, 0, top.Y, 1e-9)

	// 35 degrees below the positive x axis.
	end := HandlePosition(w, w, 1)
	assert.InDelta(t, 100+100*math.Cos(35*math.Pi/180), end.X, 1e-9)
	assert.InDelta(t, 100+100*math.Sin(35*math.Pi/180), end.Y, 1e-9)

	// Start mirrors the end across the vertical axis.
	start := HandlePosition(w, w, 0)
	assert.InDelta(t, w-end.X, start.X, 1e-9)
	assert.InDelta(t, end.Y, start.Y, 1e-9)

	p := HandlePosition(w, w, math.NaN())
	assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
}

func TestTrackOffset(t *testing.T) {
	assert.InDelta(t, 0, trackOffset(StartAngle), 1e-9)
	assert.InDelta(t, 0, trackOffset(145), 1e-9)
	assert.InDelta(t, 250, trackOffset(35), 1e-9)
	assert.InDelta(t, 305, trackOffset(90), 1e-9)
}
