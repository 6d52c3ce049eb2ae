package models

// MusicTheme is the accent broadcast by the audio player to background effects
type MusicTheme struct {
	Color    string `json:"color" yaml:"color"`
	BaseHue  int    `json:"base_hue" yaml:"base_hue"`
	RangeHue int    `json:"range_hue" yaml:"range_hue"`
}

// DefaultTheme is used until a track with its own accent is selected
var DefaultTheme = MusicTheme{
	Color:    "#00bfcf",
	BaseHue:  185,
	RangeHue: 55,
}

// Track is a single playlist entry
type Track struct {
	Title  string      `json:"title" yaml:"title"`
	Artist string      `json:"artist" yaml:"artist"`
	Src    string      `json:"src" yaml:"src"`
	Theme  *MusicTheme `json:"theme,omitempty" yaml:"theme"`
}

// Accent returns the track theme, or the default when it has none
func (t Track) Accent() MusicTheme {
	if t.Theme == nil {
		return DefaultTheme
	}
	return *t.Theme
}

// Playlist wraps the array of tracks
type Playlist struct {
	Tracks []Track `json:"tracks" yaml:"tracks"`
}
