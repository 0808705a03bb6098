package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var errBadSuite = errors.New("searchbench: bad suite")

// Suite is a list of positions to search, read from YAML:
//
//	depth: 3
//	positions:
//	  - name: start
//	    fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
//	    depth: 4
type Suite struct {
	Depth     int     `yaml:"depth"`
	Positions []Entry `yaml:"positions"`
}

type Entry struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
}

func loadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSuite(data)
}

// parseSuite fills in missing per-position depths from the suite depth.
func parseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadSuite, err)
	}
	if len(suite.Positions) == 0 {
		return nil, fmt.Errorf("%w: no positions", errBadSuite)
	}
	for i := range suite.Positions {
		entry := &suite.Positions[i]
		if entry.FEN == "" {
			return nil, fmt.Errorf("%w: position %d has no fen", errBadSuite, i)
		}
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("#%d", i+1)
		}
		if entry.Depth == 0 {
			entry.Depth = suite.Depth
		}
		if entry.Depth <= 0 {
			return nil, fmt.Errorf("%w: %s has no positive depth", errBadSuite, entry.Name)
		}
	}
	return &suite, nil
}
