package models

import "gansputra.dev/internal/icons"

// SocialLink represents a footer/profile link
type SocialLink struct {
	Platform string     `json:"platform" yaml:"platform"`
	Icon     icons.Name `json:"icon" yaml:"icon"`
	URL      string     `json:"url" yaml:"url"`
}

// SocialList wraps the array of social links
type SocialList struct {
	Links []SocialLink `json:"links" yaml:"links"`
}
