package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mawkler/advent-of-code/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader adapts LoadConfig to ports.ConfigLoader.
type Loader struct{}

func (Loader) LoadConfig(root string) (domain.Config, error) { return LoadConfig(root) }

// LoadConfig loads aoc.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	p := y.AOC.Paths
	if p.Inputs != "" {
		cfg.Paths.Inputs = p.Inputs
	}
	if p.AnswersFile != "" {
		cfg.Paths.AnswersFile = p.AnswersFile
	}
	if p.RunsDir != "" {
		cfg.Paths.RunsDir = p.RunsDir
	}

	r := y.AOC.Run
	if r.Parallelism != nil {
		if *r.Parallelism <= 0 {
			return cfg, invalidField(path, "aoc.run.parallelism", fmt.Sprintf("must be positive, got %d", *r.Parallelism))
		}
		cfg.Run.Parallelism = *r.Parallelism
	}
	if strings.TrimSpace(r.Timeout) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(r.Timeout))
		if err != nil {
			return cfg, invalidField(path, "aoc.run.timeout", err.Error())
		}
		if d < 0 {
			return cfg, invalidField(path, "aoc.run.timeout", "must not be negative")
		}
		cfg.Run.Timeout = d
	}
	if r.Save != nil {
		cfg.Run.Save = *r.Save
	}

	f := y.AOC.Fetch
	if f.BaseURL != "" {
		cfg.Fetch.BaseURL = strings.TrimRight(f.BaseURL, "/")
	}
	if f.UserAgent != "" {
		cfg.Fetch.UserAgent = f.UserAgent
	}
	if f.SessionEnv != "" {
		cfg.Fetch.SessionEnv = f.SessionEnv
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	AOC struct {
		Paths struct {
			Inputs      string `yaml:"inputs"`
			AnswersFile string `yaml:"answers_file"`
			RunsDir     string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Run struct {
			Parallelism *int   `yaml:"parallelism"`
			Timeout     string `yaml:"timeout"`
			Save        *bool  `yaml:"save"`
		} `yaml:"run"`

		Fetch struct {
			BaseURL    string `yaml:"base_url"`
			UserAgent  string `yaml:"user_agent"`
			SessionEnv string `yaml:"session_env"`
		} `yaml:"fetch"`
	} `yaml:"aoc"`
}
