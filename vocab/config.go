package vocab

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/core"
)

// Config is the YAML configuration document:
//
//	words: [pain, gain, pan]
//	files: [extra.txt]
//	case_fold: false
//	workers: 4
//	log_level: info
//
// Relative file paths are resolved against the directory of the config file.
type Config struct {
	Words    []string `yaml:"words"`
	Files    []string `yaml:"files"`
	CaseFold bool     `yaml:"case_fold"`
	Workers  int      `yaml:"workers"`
	LogLevel string   `yaml:"log_level"`

	baseDir string
}

// ParseConfig decodes and validates a YAML document.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("vocab: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadConfig reads, decodes and validates the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read config %q: %w", path, err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.baseDir = filepath.Dir(path)

	return c, nil
}

// Validate rejects negative worker counts and unknown log levels.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
		}
	}

	return nil
}

// Vocabulary returns the inline words followed by the words of every listed
// file, in order. ErrNoVocabulary is returned when the result is empty.
func (c *Config) Vocabulary() ([]string, error) {
	words := append([]string(nil), c.Words...)
	for _, f := range c.Files {
		if !filepath.IsAbs(f) && c.baseDir != "" {
			f = filepath.Join(c.baseDir, f)
		}
		more, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		words = append(words, more...)
	}
	if len(words) == 0 {
		return nil, ErrNoVocabulary
	}

	return words, nil
}

// GraphOptions translates the construction settings into core options.
func (c *Config) GraphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.CaseFold {
		opts = append(opts, core.WithCaseFold())
	}
	if c.Workers > 0 {
		opts = append(opts, core.WithWorkers(c.Workers))
	}

	return opts
}
