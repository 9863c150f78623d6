package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/splitbill/internal/friends"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	AvatarBaseURL  string `mapstructure:"avatar_base_url"`
	SeedFriends    bool   `mapstructure:"seed_friends"`
}

// LogConfig controls the debug log. An empty Path discards log output.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix SPLITBILL_.
// overrides are applied last and win over both; keys use dotted form ("log.path").
func Load(overrides map[string]any) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "€")
	v.SetDefault("ui.avatar_base_url", friends.DefaultAvatarURL)
	v.SetDefault("ui.seed_friends", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPLITBILL_CONFIG")
	if p, ok := overrides["config"].(string); ok && p != "" {
		cfgPath = p
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "splitbill"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPLITBILL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range overrides {
		if k == "config" {
			continue
		}
		v.Set(k, val)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if strings.TrimSpace(c.UI.AvatarBaseURL) == "" {
		c.UI.AvatarBaseURL = friends.DefaultAvatarURL
	}
	return c, nil
}
