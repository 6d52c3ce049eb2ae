package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/state"
)

var pink = models.MusicTheme{Color: "#ff0080", BaseHue: 320, RangeHue: 40}

func testPlaylist() *models.Playlist {
	return &models.Playlist{Tracks: []models.Track{
		{Title: "One", Src: "/1.mp3", Theme: &pink},
		{Title: "Two", Src: "/2.mp3"},
		{Title: "Three", Src: "/3.mp3"},
	}}
}

func TestPlayerRejectsEmptyPlaylist(t *testing.T) {
	_, err := NewPlayer(&models.Playlist{}, nil)
	assert.ErrorIs(t, err, ErrEmptyPlaylist)
	_, err = NewPlayer(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyPlaylist)
}

func TestPlayerCircularNavigation(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Prev().Index, "prev from first wraps to last")
	assert.Equal(t, 0, p.Next().Index, "next from last wraps to first")

	_, err = p.SelectTrack(2)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Next().Index)

	_, err = p.SelectTrack(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPlayerTrackSwitchKeepsPlayState(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)

	p.TimeUpdate(30, 120)
	st := p.Next()
	assert.False(t, st.Playing, "switching while paused does not start playback")
	assert.Zero(t, st.CurrentTime)
	assert.Zero(t, st.Progress)

	p.Play()
	p.TimeUpdate(30, 120)
	st = p.Next()
	assert.True(t, st.Playing, "switching while playing keeps playing")
	assert.Zero(t, st.CurrentTime)
}

func TestPlayerEndedAdvances(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)
	_, err = p.SelectTrack(2)
	require.NoError(t, err)

	st := p.Ended()
	assert.Equal(t, 0, st.Index)
	assert.True(t, st.Playing)
}

func TestPlayerSeekClick(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)

	p.TimeUpdate(0, 200)
	st := p.SeekClick(50, 200)
	assert.InDelta(t, 50, st.CurrentTime, 1e-9)
	assert.InDelta(t, 25, st.Progress, 1e-9)

	assert.InDelta(t, 200, p.SeekClick(500, 200).CurrentTime, 1e-9)
	assert.InDelta(t, 0, p.SeekClick(-10, 200).CurrentTime, 1e-9)
	assert.InDelta(t, 0, p.SeekClick(10, 0).CurrentTime, 1e-9)
}

func TestPlayerTimeUpdateClamps(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)

	st := p.TimeUpdate(150, 100)
	assert.InDelta(t, 100, st.CurrentTime, 1e-9)
	assert.InDelta(t, 100, st.Progress, 1e-9)

	st = p.TimeUpdate(-3, 100)
	assert.Zero(t, st.CurrentTime)
}

func TestPlayerToggleAndRelease(t *testing.T) {
	p, err := NewPlayer(testPlaylist(), nil)
	require.NoError(t, err)
	assert.True(t, p.Toggle().Playing)
	assert.False(t, p.Toggle().Playing)
	p.Play()
	p.Release()
	assert.False(t, p.State().Playing)
}

func TestPlayerBroadcastsTheme(t *testing.T) {
	theme := state.NewValue(models.DefaultTheme)
	p, err := NewPlayer(testPlaylist(), theme)
	require.NoError(t, err)
	assert.Equal(t, pink, theme.Get(), "first track accent applied on load")

	ch, cancel := theme.Subscribe()
	defer cancel()
	<-ch

	p.Next()
	assert.Equal(t, models.DefaultTheme, <-ch, "track without accent broadcasts the default")

	p.Prev()
	assert.Equal(t, pink, <-ch)
}
