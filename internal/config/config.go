package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSentence seeds the pool when no word list is configured.
const DefaultSentence = "the quick brown fox jumps over the lazy dog while we drag these little words around"

// Config holds application configuration.
type Config struct {
	Words  WordsConfig
	Layout LayoutConfig
	UI     UIConfig
}

// WordsConfig selects the seed word list. File wins over Sentence.
type WordsConfig struct {
	Sentence string
	File     string
}

// LayoutConfig holds flow layout spacing, in terminal cells.
type LayoutConfig struct {
	ItemSpacing int `mapstructure:"item_spacing"`
	LineSpacing int `mapstructure:"line_spacing"`
	GhostLines  int `mapstructure:"ghost_lines"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Help      bool
}

// Load reads configuration from defaults, an optional TOML file and the
// environment. Env var overrides use prefix WORDTILES_. An empty path falls
// back to WORDTILES_CONFIG and then to the user config directory.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("words.sentence", DefaultSentence)
	v.SetDefault("words.file", "")
	v.SetDefault("layout.item_spacing", 1)
	v.SetDefault("layout.line_spacing", 1)
	v.SetDefault("layout.ghost_lines", 2)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.help", false)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("WORDTILES_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordtiles"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORDTILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Layout = c.Layout.normalized()
	return c, nil
}

func (l LayoutConfig) normalized() LayoutConfig {
	if l.ItemSpacing < 0 {
		l.ItemSpacing = 0
	}
	if l.LineSpacing < 0 {
		l.LineSpacing = 0
	}
	if l.GhostLines < 0 {
		l.GhostLines = 0
	}
	return l
}
