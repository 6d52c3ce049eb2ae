package models

import (
	"net/url"
	"strings"
)

// FallbackThumbnail is shown when a video URL has no recognizable ID
const FallbackThumbnail = "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?auto=format&fit=crop&q=80&w=800"

// AMV represents an anime music video edit
type AMV struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Anime       string   `json:"anime" yaml:"anime"`
	Description string   `json:"description" yaml:"description"`
	VideoURL    string   `json:"video_url" yaml:"video_url"`
	Music       string   `json:"music,omitempty" yaml:"music"`
	Software    string   `json:"software,omitempty" yaml:"software"`
	Tags        []string `json:"tags" yaml:"tags"`
	Date        string   `json:"date" yaml:"date"`
}

// HasTag reports whether the AMV carries the given tag
func (a AMV) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// VideoID extracts the YouTube video ID, or "" if the URL is not recognized
func (a AMV) VideoID() string {
	return videoID(a.VideoURL)
}

// Thumbnail returns the preview image for the video
func (a AMV) Thumbnail() string {
	id := a.VideoID()
	if id == "" {
		return FallbackThumbnail
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// EmbedURL returns the autoplaying embed URL used by the preview modal, or
// "" when the video is not on YouTube
func (a AMV) EmbedURL() string {
	id := a.VideoID()
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id + "?autoplay=1"
}

func videoID(raw string) string {
	switch {
	case strings.Contains(raw, "youtu.be/"):
		return trimQuery(strings.SplitN(raw, "youtu.be/", 2)[1])
	case strings.Contains(raw, "youtube.com/watch"):
		_, query, ok := strings.Cut(raw, "?")
		if !ok {
			return ""
		}
		values, err := url.ParseQuery(trimFragment(query))
		if err != nil {
			return ""
		}
		return values.Get("v")
	case strings.Contains(raw, "youtube.com/embed/"):
		return trimQuery(strings.SplitN(raw, "embed/", 2)[1])
	}
	return ""
}

func trimQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func trimFragment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// AMVList wraps the array of AMVs
type AMVList struct {
	AMVs []AMV `json:"amvs" yaml:"amvs"`
}
