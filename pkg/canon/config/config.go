package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/canon/pkg/canon/chunk"
	"github.com/cognicore/canon/pkg/canon/internalerr"
)

// Config represents the canon configuration file.
//
// Example:
//
//	grammar:
//	  label: NP
//	  rules: ["<NN><NN>+", "<JJ><NN>+"]
//	resources:
//	  words: words.txt
//	  exceptions: exceptions.yaml
//	  db: canon.db
//	log:
//	  json: true
//	  file: canon.log
type Config struct {
	Grammar   Grammar   `yaml:"grammar"`
	Resources Resources `yaml:"resources"`
	Log       Log       `yaml:"log"`
}

// Grammar configures the chunker rules. Empty rules select the default grammar.
type Grammar struct {
	Label string   `yaml:"label"`
	Rules []string `yaml:"rules"`
}

// Resources points at lexical resources. Empty paths select the embedded
// defaults; a database takes precedence over the word and exception files.
type Resources struct {
	Words      string `yaml:"words"`
	Exceptions string `yaml:"exceptions"`
	DB         string `yaml:"db"`
}

// Log configures the CLI logger.
type Log struct {
	JSON bool   `yaml:"json"`
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grammar: Grammar{
			Label: chunk.DefaultLabel,
			Rules: append([]string(nil), chunk.DefaultPatterns...),
		},
	}
}

// LoadConfig loads a configuration file. Unset grammar fields fall back to
// the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	def := Default()
	if strings.TrimSpace(cfg.Grammar.Label) == "" {
		cfg.Grammar.Label = def.Grammar.Label
	}
	if len(cfg.Grammar.Rules) == 0 {
		cfg.Grammar.Rules = def.Grammar.Rules
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the grammar compiles.
func (c *Config) Validate() error {
	if _, err := c.BuildGrammar(); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

// BuildGrammar compiles the configured grammar.
func (c *Config) BuildGrammar() (*chunk.Grammar, error) {
	return chunk.NewGrammar(c.Grammar.Label, c.Grammar.Rules...)
}
