package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Scroll policies accepted by ScrollPolicy.
const (
	PolicyCenter = "center"
	PolicyMargin = "margin"
)

type Config struct {
	SourcePath   string
	OutputPath   string
	Locale       string // target locale tag, used for the default output name
	UILanguage   string // locale of the editor chrome
	NoColor      bool
	Scrolloff    int
	ScrollPolicy string
	Debug        bool
}

// Flags carries the values bound to the CLI flags; zero values mean
// "not given".
type Flags struct {
	Out        string
	Locale     string
	UILanguage string
	NoColor    bool
	ConfigPath string
}

// Load resolves the configuration for one session. Precedence, lowest
// first: defaults, the TOML rc file, environment variables (with an
// optional .env file via godotenv), CLI flags.
func Load(sourcePath string, flags Flags) (*Config, error) {
	cfg := &Config{
		SourcePath:   sourcePath,
		Locale:       "id",
		UILanguage:   "en",
		Scrolloff:    2,
		ScrollPolicy: PolicyCenter,
	}

	if err := cfg.applyFile(flags.ConfigPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyFlags(flags)

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath(cfg.SourcePath, cfg.Locale)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultOutputPath returns the source's basename prefixed with the
// locale tag, in the same directory (fr + messages.json -> fr_messages.json).
func DefaultOutputPath(sourcePath, locale string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	return filepath.Join(dir, locale+"_"+base)
}

// fileConfig is the shape of the optional rc file.
type fileConfig struct {
	Locale       string `toml:"locale"`
	UILanguage   string `toml:"ui_language"`
	NoColor      bool   `toml:"no_color"`
	Scrolloff    *int   `toml:"scrolloff"`
	ScrollPolicy string `toml:"scroll_policy"`
}

func (c *Config) applyFile(path string) error {
	explicit := path != ""
	if path == "" {
		confDir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(confDir, "lingotree", "config.toml")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.Locale != "" {
		c.Locale = fc.Locale
	}
	if fc.UILanguage != "" {
		c.UILanguage = fc.UILanguage
	}
	if fc.NoColor {
		c.NoColor = true
	}
	if fc.Scrolloff != nil {
		c.Scrolloff = *fc.Scrolloff
	}
	if fc.ScrollPolicy != "" {
		c.ScrollPolicy = fc.ScrollPolicy
	}
	return nil
}

func (c *Config) applyEnv() {
	if err := godotenv.Load(); err != nil {
		// .env is optional; variables may come from the environment itself.
	}

	if v := os.Getenv("LINGOTREE_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("LINGOTREE_UI_LANG"); v != "" {
		c.UILanguage = v
	}
	if v := os.Getenv("LINGOTREE_SCROLLOFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scrolloff = n
		}
	}
	if v := os.Getenv("LINGOTREE_SCROLL_POLICY"); v != "" {
		c.ScrollPolicy = v
	}
	if envBool("LINGOTREE_NO_COLOR") {
		c.NoColor = true
	}
	if envBool("LINGOTREE_DEBUG") {
		c.Debug = true
	}
}

func (c *Config) applyFlags(flags Flags) {
	if flags.Out != "" {
		c.OutputPath = flags.Out
	}
	if flags.Locale != "" {
		c.Locale = flags.Locale
	}
	if flags.UILanguage != "" {
		c.UILanguage = flags.UILanguage
	}
	if flags.NoColor {
		c.NoColor = true
	}
}

// validate applies every rule on the resolved configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.SourcePath) == "" {
		return fmt.Errorf("config: a source file path is required")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid locale tag %q: %w", c.Locale, err)
	}
	if _, err := language.Parse(c.UILanguage); err != nil {
		return fmt.Errorf("config: invalid UI language tag %q: %w", c.UILanguage, err)
	}
	if c.Scrolloff < 0 {
		return fmt.Errorf("config: scrolloff must be >= 0, got %d", c.Scrolloff)
	}
	if c.ScrollPolicy != PolicyCenter && c.ScrollPolicy != PolicyMargin {
		return fmt.Errorf("config: scroll policy must be %q or %q, got %q", PolicyCenter, PolicyMargin, c.ScrollPolicy)
	}
	return nil
}

func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
