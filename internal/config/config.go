package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "feedback.config.json"

// Config holds widget configuration.
type Config struct {
	Copy CopyConfig
	UI   UIConfig
	Log  LogConfig
}

// CopyConfig holds the text shown on each screen.
type CopyConfig struct {
	Welcome     string
	Question    string
	Form        string
	Placeholder string
	Thanks      string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Width     int
}

// LogConfig controls where the debug log goes. An empty path discards it.
type LogConfig struct {
	Path string
}

// Load reads configuration from path (or FEEDBACK_CONFIG, or DefaultPath)
// and the environment. Env var overrides use prefix FEEDBACK_.
// A missing file is fine; a malformed one is an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("copy.welcome", "Thank you for attending QECamp 2022! 😻")
	v.SetDefault("copy.question", "How was your experience?")
	v.SetDefault("copy.form", "Care to tell us why?")
	v.SetDefault("copy.placeholder", "Complain here")
	v.SetDefault("copy.thanks", "Thanks for your feedback 🎉")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.width", 50)
	v.SetDefault("log.path", "")

	v.SetConfigType("json")

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("FEEDBACK_CONFIG"); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultPath
		}
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("FEEDBACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width < 20 {
		return Config{}, fmt.Errorf("ui.width must be at least 20, got %d", c.UI.Width)
	}
	return c, nil
}
