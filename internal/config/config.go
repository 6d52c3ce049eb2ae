package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gansputra.dev/internal/models"
)

// IntroMode controls when the splash intro is shown
type IntroMode string

const (
	IntroOnce   IntroMode = "once"
	IntroAlways IntroMode = "always"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	DBPath     string
	LogLevel   string
	Dev        bool
	SessionTTL time.Duration
	Intro      IntroMode

	CarouselInterval time.Duration
	Contact          ContactConfig

	Site     *models.Site
	AMVs     *models.AMVList
	GFX      *models.GFXList
	Projects *models.ProjectList
	Social   *models.SocialList
	Playlist *models.Playlist
}

// ContactConfig holds the form relay and fallback settings
type ContactConfig struct {
	Endpoint        string
	AccessKey       string
	Recipient       string
	Timeout         time.Duration
	ConfirmDuration time.Duration
	AutoFallback    bool
}

// Load reads .env (if present), the environment, and the content files
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Defaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns a config with every setting at its default and no content
func Defaults() *Config {
	return &Config{
		ServerAddr:       ":8080",
		DataPath:         "data",
		DBPath:           "portfolio.db",
		LogLevel:         "info",
		SessionTTL:       30 * time.Minute,
		Intro:            IntroOnce,
		CarouselInterval: 3 * time.Second,
		Contact: ContactConfig{
			Endpoint:        "https://api.web3forms.com/submit",
			Timeout:         10 * time.Second,
			ConfirmDuration: 5 * time.Second,
		},
	}
}

// applyEnv overrides defaults from environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.Contact.AccessKey = os.Getenv("WEB3FORMS_ACCESS_KEY")
	c.Contact.Recipient = os.Getenv("WHATSAPP_NUMBER")
	if v := os.Getenv("CONTACT_ENDPOINT"); v != "" {
		c.Contact.Endpoint = v
	}

	var err error
	if c.Dev, err = envBool("DEV", c.Dev); err != nil {
		return err
	}
	if c.Contact.AutoFallback, err = envBool("CONTACT_AUTO_FALLBACK", c.Contact.AutoFallback); err != nil {
		return err
	}
	if c.Contact.Timeout, err = envDuration("CONTACT_TIMEOUT", c.Contact.Timeout); err != nil {
		return err
	}
	if c.SessionTTL, err = envDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.CarouselInterval, err = envDuration("CAROUSEL_INTERVAL", c.CarouselInterval); err != nil {
		return err
	}

	switch mode := IntroMode(os.Getenv("INTRO_MODE")); mode {
	case "":
	case IntroOnce, IntroAlways:
		c.Intro = mode
	default:
		return fmt.Errorf("invalid INTRO_MODE %q (want once or always)", mode)
	}
	return nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return def, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

// LoadContent reads and validates the content tables under DataPath
func (c *Config) LoadContent() error {
	c.Site = &models.Site{}
	c.AMVs = &models.AMVList{}
	c.GFX = &models.GFXList{}
	c.Projects = &models.ProjectList{}
	c.Social = &models.SocialList{}
	c.Playlist = &models.Playlist{}

	files := []struct {
		name string
		dst  any
	}{
		{"site.yaml", c.Site},
		{"amvs.yaml", c.AMVs},
		{"gfx.yaml", c.GFX},
		{"projects.yaml", c.Projects},
		{"social.yaml", c.Social},
		{"playlist.yaml", c.Playlist},
	}
	for _, f := range files {
		if err := loadYAML(filepath.Join(c.DataPath, f.name), f.dst); err != nil {
			return err
		}
	}
	return c.validate()
}

// loadYAML reads a single content file
func loadYAML(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
