package services

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/state"
)

// ErrEmptyPlaylist is returned when a player is built without tracks
var ErrEmptyPlaylist = errors.New("playlist is empty")

// PlayerState is the client view of the audio player
type PlayerState struct {
	Index       int          `json:"index"`
	Track       models.Track `json:"track"`
	Playing     bool         `json:"playing"`
	CurrentTime float64      `json:"current_time"`
	Duration    float64      `json:"duration"`
	Progress    float64      `json:"progress"`
	Count       int          `json:"count"`
}

// Player models the site audio widget. Track changes broadcast the track's
// accent into the theme value read by the background effects.
type Player struct {
	mu       sync.Mutex
	tracks   []models.Track
	index    int
	playing  bool
	current  float64
	duration float64
	theme    *state.Value[models.MusicTheme]
}

// NewPlayer creates a paused player on the first track
func NewPlayer(playlist *models.Playlist, theme *state.Value[models.MusicTheme]) (*Player, error) {
	if playlist == nil || len(playlist.Tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	p := &Player{tracks: playlist.Tracks, theme: theme}
	p.broadcastLocked()
	return p, nil
}

// State snapshots the player
func (p *Player) State() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Player) stateLocked() PlayerState {
	return PlayerState{
		Index:       p.index,
		Track:       p.tracks[p.index],
		Playing:     p.playing,
		CurrentTime: p.current,
		Duration:    p.duration,
		Progress:    p.progressLocked(),
		Count:       len(p.tracks),
	}
}

// Play resumes playback of the current track
func (p *Player) Play() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	return p.stateLocked()
}

// Pause stops playback, keeping the position
func (p *Player) Pause() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.stateLocked()
}

// Toggle flips between playing and paused
func (p *Player) Toggle() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = !p.playing
	return p.stateLocked()
}

// Next moves to the following track, wrapping to the first
func (p *Player) Next() PlayerState {
	return p.step(1)
}

// Prev moves to the preceding track, wrapping to the last
func (p *Player) Prev() PlayerState {
	return p.step(-1)
}

func (p *Player) step(delta int) PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.tracks)
	p.loadLocked((p.index + delta + n) % n)
	return p.stateLocked()
}

// SelectTrack jumps to track i
func (p *Player) SelectTrack(i int) (PlayerState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.tracks) {
		return p.stateLocked(), fmt.Errorf("track %d of %d: %w", i, len(p.tracks), ErrIndexOutOfRange)
	}
	p.loadLocked(i)
	return p.stateLocked(), nil
}

// Ended handles the end of the current track: advance and keep playing
func (p *Player) Ended() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	n := len(p.tracks)
	p.loadLocked((p.index + 1) % n)
	return p.stateLocked()
}

// loadLocked switches source. Playback continues if it was playing; either
// way the new source starts from zero.
func (p *Player) loadLocked(i int) {
	p.index = i
	p.current = 0
	p.duration = 0
	p.broadcastLocked()
}

// TimeUpdate records a playback-time-changed event from the client
func (p *Player) TimeUpdate(current, duration float64) PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if duration > 0 && !math.IsInf(duration, 0) {
		p.duration = duration
	}
	p.current = clampFloat(current, 0, p.durationOr(current))
	return p.stateLocked()
}

// Seek moves to a fraction of the track duration
func (p *Player) Seek(fraction float64) PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = clampFloat(fraction, 0, 1) * p.duration
	return p.stateLocked()
}

// SeekClick maps a click at x on a progress bar of the given width to a
// playback position
func (p *Player) SeekClick(x, width float64) PlayerState {
	if width <= 0 {
		return p.State()
	}
	return p.Seek(x / width)
}

// Release pauses playback; called when the owning session goes away
func (p *Player) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *Player) progressLocked() float64 {
	if p.duration <= 0 {
		return 0
	}
	return p.current / p.duration * 100
}

func (p *Player) durationOr(fallback float64) float64 {
	if p.duration > 0 {
		return p.duration
	}
	return math.Max(fallback, 0)
}

// broadcastLocked pushes the current track accent to the theme value.
// Holding p.mu keeps broadcasts in track-change order.
func (p *Player) broadcastLocked() {
	if p.theme == nil {
		return
	}
	p.theme.Set(p.tracks[p.index].Accent())
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
