// Package engine assembles the board, pattern, playout and search
// packages into the single context spec §9 calls for: the globals the
// reference implementation scattered across the process (log handle,
// scratch marks, RNG seed, pattern tables, last-capture point) collected
// into one struct threaded through every operation, following the
// teacher's agogo.Config/agogo.New/Arena shape.
package engine

import (
	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/mcts"
)

// DefaultNumSimulations is N_SIMS from spec §8's end-to-end scenario 1.
const DefaultNumSimulations = 1400

// Config collects everything an Engine needs to start: board geometry,
// scoring, pattern file locations, the log destination and the MCTS
// tunables, mirroring mcts.Config/DefaultConfig and dual.Config in the
// teacher.
type Config struct {
	BoardSize int
	Komi      float64
	Seed      uint32

	// ProbPath/SpatPath name the large-pattern dictionary's two text
	// files (spec §6). Leaving either blank disables the dictionary:
	// expansion then skips the large-pattern prior and the engine relies
	// on the even/capture/pat3/CFG priors alone (spec §4.6's "Failure
	// semantics").
	ProbPath string
	SpatPath string

	// LogPath is the append-opened, unbuffered michi.log of spec §6.
	LogPath string

	NumSimulations int

	MCTS mcts.Config
}

// DefaultConfig returns a 9x9, komi-7.5 configuration with no pattern
// files and logging to "michi.log" in the working directory.
func DefaultConfig() Config {
	return Config{
		BoardSize:      9,
		Komi:           board.DefaultKomi,
		NumSimulations: DefaultNumSimulations,
		LogPath:        "michi.log",
		MCTS:           mcts.DefaultConfig(),
	}
}

// IsValid reports whether c is usable to construct an Engine.
func (c Config) IsValid() bool {
	return c.BoardSize > 0 && c.NumSimulations > 0 && c.LogPath != "" && c.MCTS.IsValid()
}
