package domain

import "time"

// Config represents the workspace configuration loaded from aoc.yaml.
type Config struct {
	Paths PathsConfig
	Run   RunConfig
	Fetch FetchConfig
}

type PathsConfig struct {
	// Inputs is a path template relative to the workspace root.
	// Supported placeholders: {{year}}, {{day}}, {{day2}}.
	Inputs      string
	AnswersFile string
	RunsDir     string
}

type RunConfig struct {
	Parallelism int
	Timeout     time.Duration
	Save        bool
}

type FetchConfig struct {
	BaseURL    string
	UserAgent  string
	SessionEnv string
}

// DefaultConfig provides sane defaults if aoc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Inputs:      "inputs/{{year}}/day{{day2}}.txt",
			AnswersFile: "answers.yaml",
			RunsDir:     "runs",
		},
		Run: RunConfig{
			Parallelism: 4,
			Timeout:     30 * time.Second,
			Save:        true,
		},
		Fetch: FetchConfig{
			BaseURL:    "https://adventofcode.com",
			UserAgent:  "github.com/mawkler/advent-of-code",
			SessionEnv: "AOC_SESSION",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
