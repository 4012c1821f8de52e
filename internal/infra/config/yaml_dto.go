package config

// YAMLAnswerBook is the on-disk shape of answers.yaml: year -> day -> parts.
type YAMLAnswerBook map[int]map[int]YAMLAnswers

type YAMLAnswers struct {
	Part1 string `yaml:"part1,omitempty"`
	Part2 string `yaml:"part2,omitempty"`
}
