package engine

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/mcts"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/playout"
	"github.com/corvid/weiqi/rng"
)

// maxLogMessages is spec §7's "too-many-log-messages" fatal cutoff.
const maxLogMessages = 1000000

// Engine is the explicit context spec §9 asks for in place of the
// reference implementation's globals: board geometry, the current
// position, scratch buffers, the compiled pattern tables, the RNG stream
// and the log handle, all owned by one value instead of scattered across
// package-level variables.
type Engine struct {
	cfg     Config
	geom    board.Geometry
	pos     *board.Position
	scratch *board.Scratch

	pat3  *pattern.Pat3Set
	large *pattern.LargeDict

	rng    *rng.Source
	policy *playout.Policy

	logFile  *os.File
	logger   *log.Logger
	logCount int

	totalCaptured int
	lastTree      *mcts.Tree
}

// New opens the log file, compiles the 3x3 pattern set, attempts to load
// the large-pattern dictionary (a missing or unreadable pair of files is
// a warning, not a failure, per spec §4.6/§7), and returns a ready
// Engine over an empty board.
func New(cfg Config) (*Engine, error) {
	if !cfg.IsValid() {
		return nil, errors.New("engine: invalid config")
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "engine: opening log file")
	}

	geom := board.NewGeometry(cfg.BoardSize)
	e := &Engine{
		cfg:     cfg,
		geom:    geom,
		pos:     board.NewPosition(geom, cfg.Komi),
		scratch: board.NewScratch(geom),
		rng:     rng.New(cfg.Seed),
		logFile: f,
		logger:  log.New(f, "", log.Ltime),
		pat3:    pattern.CompilePat3(),
	}
	e.policy = &playout.Policy{Pat3: e.pat3, RNG: e.rng}
	e.loadLargePatterns()
	return e, nil
}

func (e *Engine) loadLargePatterns() {
	if e.cfg.ProbPath == "" || e.cfg.SpatPath == "" {
		e.log("no pattern files configured, large-pattern dictionary disabled")
		return
	}

	probFile, err := os.Open(e.cfg.ProbPath)
	if err != nil {
		e.log("warning: %v", err)
		return
	}
	defer probFile.Close()
	probs, err := pattern.LoadProbs(probFile)
	if err != nil {
		e.log("warning: %v", err)
		return
	}

	spatFile, err := os.Open(e.cfg.SpatPath)
	if err != nil {
		e.log("warning: %v", err)
		return
	}
	defer spatFile.Close()
	dict := pattern.NewLargeDict(pattern.DefaultKSize)
	if err := pattern.LoadSpat(spatFile, probs, dict); err != nil {
		e.log("warning: %v", err)
		return
	}
	e.large = dict
}

// log writes one line to the engine's log file, enforcing spec §7's
// too-many-log-messages fatal cutoff.
func (e *Engine) log(format string, args ...interface{}) {
	e.logCount++
	if e.logCount > maxLogMessages {
		panic("engine: exceeded maximum log message count")
	}
	e.logger.Printf(format, args...)
}

// Close releases the log file.
func (e *Engine) Close() error {
	return e.logFile.Close()
}

// Position is the current board state. Callers must not mutate it.
func (e *Engine) Position() *board.Position { return e.pos }

// Geometry is the board layout this engine was built for.
func (e *Engine) Geometry() board.Geometry { return e.geom }

// ClearBoard resets to an empty board, per spec §4.1's empty_position.
func (e *Engine) ClearBoard() {
	e.pos.Reset()
	e.totalCaptured = 0
	e.log("clear_board")
}

// Play plays pt for the current side, per spec §4.1's play_move.
func (e *Engine) Play(pt board.Point) error {
	if err := e.pos.PlayMove(e.scratch, pt); err != nil {
		return errors.Wrap(err, "engine: play")
	}
	e.totalCaptured += e.pos.LastCaptureCount
	e.log("play %s", board.StrCoord(e.geom, pt))
	return nil
}

// Pass passes for the current side; always legal.
func (e *Engine) Pass() {
	e.pos.PassMove()
	e.log("pass")
}

// Undo reverses the last Play or Pass (spec §4.1's undo_move; see its
// single-capture limitation).
func (e *Engine) Undo() error {
	before := e.pos.LastCaptureCount
	if err := e.pos.UndoMove(); err != nil {
		return errors.Wrap(err, "engine: undo")
	}
	e.totalCaptured -= before
	e.log("undo")
	return nil
}

// GenMove runs tree_search for the configured number of simulations from
// the current position and returns the chosen move. The tree is
// retained for DumpTree until the next GenMove call.
func (e *Engine) GenMove() mcts.Result {
	tree := mcts.NewTree(e.pos, e.cfg.MCTS, mcts.Resources{
		Pat3:    e.pat3,
		Large:   e.large,
		Scratch: e.scratch,
		Policy:  e.policy,
		RNG:     e.rng,
		Logger:  e.logger,
	})
	result := tree.Search(e.cfg.NumSimulations)
	e.lastTree = tree
	e.log("genmove: %s after %d iterations", board.StrCoord(e.geom, result.Move), result.Iterations)
	return result
}
