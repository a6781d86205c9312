package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	"github.com/daniilsolovey/devocrazia/internal/render"
)

type Config struct {
	App struct {
		Host string
		Port int
	}
	Content struct {
		// BaseURL of the content server. Empty reads Dir directly.
		BaseURL string
		Dir     string
		Timeout time.Duration
	}
	Listing struct {
		PageSize int
		Locale   string
	}
	Render struct {
		Style string
	}
	Catalog struct {
		// Path to a TOML catalog. Empty uses the built-in catalog.
		Path string
	}
}

func Default() Config {
	var cfg Config
	cfg.App.Host = "localhost"
	cfg.App.Port = 3000
	cfg.Content.Dir = "content/articles"
	cfg.Content.Timeout = 10 * time.Second
	cfg.Listing.PageSize = devocrazia.DefaultPageSize
	cfg.Listing.Locale = "en"
	cfg.Render.Style = render.DefaultStyle

	return cfg
}

// Load decodes a TOML file over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.App.Port < 1 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid App.Port %d", c.App.Port))
	}
	if c.Listing.PageSize < 1 {
		errs = append(errs, fmt.Errorf("invalid Listing.PageSize %d", c.Listing.PageSize))
	}
	if c.Content.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid Content.Timeout %s", c.Content.Timeout))
	}
	if c.Content.BaseURL == "" && c.Content.Dir == "" {
		errs = append(errs, errors.New("one of Content.BaseURL or Content.Dir is required"))
	}

	return errors.Join(errs...)
}
