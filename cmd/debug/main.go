// Command debug exposes the engine's internal sweeps named in spec §6's
// "debug <subcmd>" surface that don't fit the line-oriented GTP loop:
// mcbenchmark, the tree DOT dumper, and the invariant sweep.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/engine"
)

var (
	boardSize = flag.Int("boardsize", 9, "board side length")
	komi      = flag.Float64("komi", board.DefaultKomi, "komi")
	seed      = flag.Uint64("seed", 1, "RNG seed")
	sims      = flag.Int("sims", engine.DefaultNumSimulations, "simulations per genmove, for the dump subcommand")
	logPath   = flag.String("log", "michi-debug.log", "log file path")
	n         = flag.Int("n", 100, "game count for bench")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: debug [flags] <bench|dump|assert>")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg := engine.DefaultConfig()
	cfg.BoardSize = *boardSize
	cfg.Komi = *komi
	cfg.Seed = uint32(*seed)
	cfg.NumSimulations = *sims
	cfg.LogPath = *logPath

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug:", err)
		os.Exit(1)
	}
	defer e.Close()

	if err := run(e, flag.Arg(0), *n, os.Stdout); err != nil {
		if err == errUnknownSubcommand {
			usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "debug:", err)
		os.Exit(1)
	}
}

var errUnknownSubcommand = fmt.Errorf("unknown subcommand")

// run dispatches a single debug subcommand against e, writing any report
// output to w. Split out from main so the subcommand logic can be tested
// without os.Exit or flag parsing getting in the way.
func run(e *engine.Engine, subcmd string, games int, w io.Writer) error {
	switch subcmd {
	case "bench":
		result := e.Benchmark(games)
		fmt.Fprintf(w, "n=%d mean=%.4f stddev=%.4f\n", result.N, result.Mean, result.StdDev)
		return nil
	case "dump":
		e.GenMove()
		return e.DumpTree(w)
	case "assert":
		return e.AssertInvariants()
	default:
		return errUnknownSubcommand
	}
}
