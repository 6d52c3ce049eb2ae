package services

import (
	"time"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/state"
)

// Session is the UI state of one visitor
type Session struct {
	Navigator     *state.Navigator
	ReducedMotion *state.Value[bool]
	ColorScheme   *state.Value[models.ColorScheme]
	Theme         *state.Value[models.MusicTheme]

	AMVFilter     *state.Value[string]
	GFXFilter     *state.Value[string]
	ProjectFilter *state.Value[string]

	Modal   *Modal
	Player  *Player
	Contact *ContactForm
}

// NewSessionFactory returns a constructor for visitor sessions
func NewSessionFactory(playlist *models.Playlist, carouselInterval time.Duration) (func() *Session, error) {
	if playlist == nil || len(playlist.Tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return func() *Session {
		theme := state.NewValue(models.DefaultTheme)
		// Cannot fail: the playlist was checked above.
		player, _ := NewPlayer(playlist, theme)
		return &Session{
			Navigator:     state.NewNavigator(),
			ReducedMotion: state.NewValue(false),
			ColorScheme:   state.NewValue(models.DefaultColorScheme),
			Theme:         theme,
			AMVFilter:     state.NewValue(AllTag),
			GFXFilter:     state.NewValue(AllTag),
			ProjectFilter: state.NewValue(AllTag),
			Modal:         NewModal(carouselInterval),
			Player:        player,
			Contact:       NewContactForm(),
		}
	}, nil
}

// Close stops the session's timers and releases the player
func (s *Session) Close() {
	s.Modal.Close()
	s.Player.Release()
	s.Contact.Close()
}
