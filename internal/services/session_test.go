package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gansputra.dev/internal/models"
)

func TestSessionFactory(t *testing.T) {
	_, err := NewSessionFactory(&models.Playlist{}, time.Second)
	assert.ErrorIs(t, err, ErrEmptyPlaylist)

	newSession, err := NewSessionFactory(testPlaylist(), time.Millisecond)
	require.NoError(t, err)

	a, b := newSession(), newSession()
	assert.NotSame(t, a.Player, b.Player)
	assert.Equal(t, models.SectionHero, a.Navigator.Active())
	assert.Equal(t, pink, a.Theme.Get())
	assert.Equal(t, AllTag, a.AMVFilter.Get())
	assert.Equal(t, models.SchemeDark, a.ColorScheme.Get())

	a.Player.Next()
	assert.Equal(t, models.DefaultTheme, a.Theme.Get())
	assert.Equal(t, pink, b.Theme.Get(), "theme is per session")

	a.Player.Play()
	a.Modal.Open(context.Background(), ModalProject, "1", []string{"x", "y"})
	a.Close()
	assert.False(t, a.Player.State().Playing)
	assert.False(t, a.Modal.State().Open)
	b.Close()
}
