package generation

import (
	"math"
	"time"
)

// Renderer produces one frame of a decorative effect. signal is a 0..1
// input such as audio energy or pointer speed.
type Renderer interface {
	Render(t time.Duration, signal float64) Frame
}

// Star is a single drawn point
type Star struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Alpha float64 `json:"alpha"`
}

// Frame is the output of a Renderer
type Frame struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Horizon float64 `json:"horizon"`
	Stars   []Star  `json:"stars"`
}

const (
	narrowViewport = 768
	narrowStars    = 50
	wideStars      = 150

	horizonRatio = 0.45
	spawnRatio   = 0.6
	respawnY     = -10.0

	framesPerMs = 60.0 / 1000.0
	swayFreq    = 0.0005
	swayStep    = 0.05
	flickerFreq = 0.001
)

type starSeed struct {
	x, y, size, burst, speed float64
}

// StarField is a parallax drift of stars above a horizon. Frames are a pure
// function of (seed, viewport, t, signal), so any server can render any
// frame without keeping per-client animation state.
type StarField struct {
	width, height float64
	seed          uint64
	stars         []starSeed
}

// NewStarField lays out the stars for a viewport
func NewStarField(width, height float64, seed uint64) *StarField {
	count := wideStars
	if width < narrowViewport {
		count = narrowStars
	}

	rng := NewRNG(seed)
	stars := make([]starSeed, count)
	for i := range stars {
		stars[i] = starSeed{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height * spawnRatio,
			size:  rng.Float64() * 1.2,
			burst: rng.Float64() * math.Pi * 2,
			speed: 0.05 + rng.Float64()*0.1,
		}
	}
	return &StarField{width: width, height: height, seed: seed, stars: stars}
}

// Len returns the number of stars
func (f *StarField) Len() int { return len(f.stars) }

// Render implements Renderer
func (f *StarField) Render(t time.Duration, signal float64) Frame {
	if math.IsNaN(signal) {
		signal = 0
	}
	signal = math.Max(0, math.Min(1, signal))
	ms := float64(t) / float64(time.Millisecond)
	frames := ms * framesPerMs
	horizon := f.height * horizonRatio
	span := horizon - respawnY

	frame := Frame{
		Width:   f.width,
		Height:  f.height,
		Horizon: horizon,
		Stars:   make([]Star, len(f.stars)),
	}

	// Integrated per-frame sway: sum of sin(k*ms+b)*step over frames.
	swayAmp := swayStep * framesPerMs / swayFreq

	for i, s := range f.stars {
		x := s.x
		y := s.y + s.speed*frames
		if y > horizon {
			// Each pass over the horizon respawns the star at the top with a
			// fresh x, derived from the pass number so frames stay pure.
			travelled := y - horizon
			pass := uint64(travelled/span) + 1
			y = respawnY + math.Mod(travelled, span)
			x = NewRNG(mix(f.seed, uint64(i)<<20|pass)).Float64() * f.width
		}
		x -= swayAmp * (math.Cos(swayFreq*ms+s.burst) - math.Cos(s.burst))

		flicker := math.Sin(ms*flickerFreq+s.burst)*0.3 + 0.7
		alpha := math.Min(1, flicker*0.4*(1+signal))

		frame.Stars[i] = Star{X: x, Y: y, Size: s.size, Alpha: alpha}
	}
	return frame
}
