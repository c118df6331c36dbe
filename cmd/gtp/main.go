// Command gtp is the thin GTP shell named in spec §6: a line-oriented
// command loop over a single engine.Engine, following the teacher's
// flag-driven cmd/*/main.go entry points. It carries no search logic of
// its own — every command is a one-line call into the engine package.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/engine"
)

var (
	boardSize = flag.Int("boardsize", 9, "board side length")
	komi      = flag.Float64("komi", board.DefaultKomi, "komi")
	seed      = flag.Uint64("seed", 1, "RNG seed")
	sims      = flag.Int("sims", engine.DefaultNumSimulations, "simulations per genmove")
	probPath  = flag.String("prob", "", "patterns.prob path")
	spatPath  = flag.String("spat", "", "patterns.spat path")
	logPath   = flag.String("log", "michi.log", "log file path")
)

const (
	protocolVersion = "2"
	engineName      = "corvid-weiqi"
	engineVersion   = "0.1"
)

var commands = []string{
	"protocol_version", "name", "version", "known_command", "list_commands",
	"quit", "boardsize", "clear_board", "komi", "play", "genmove", "undo",
	"showboard", "cputime", "help",
}

func main() {
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.BoardSize = *boardSize
	cfg.Komi = *komi
	cfg.Seed = uint32(*seed)
	cfg.NumSimulations = *sims
	cfg.ProbPath = *probPath
	cfg.SpatPath = *spatPath
	cfg.LogPath = *logPath

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gtp: ", err)
		os.Exit(1)
	}
	defer e.Close()

	start := time.Now()
	loop(e, start, os.Stdin, os.Stdout)
}

func loop(e *engine.Engine, start time.Time, r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		reply, ok, quit := dispatch(e, start, cmd, args)
		writeReply(w, ok, reply)
		if quit {
			return
		}
	}
}

func writeReply(w io.Writer, ok bool, reply string) {
	prefix := "="
	if !ok {
		prefix = "?"
	}
	fmt.Fprintf(w, "%s %s\n\n", prefix, reply)
}

func dispatch(e *engine.Engine, start time.Time, cmd string, args []string) (reply string, ok bool, quit bool) {
	switch cmd {
	case "protocol_version":
		return protocolVersion, true, false
	case "name":
		return engineName, true, false
	case "version":
		return engineVersion, true, false
	case "list_commands":
		return strings.Join(commands, "\n"), true, false
	case "known_command":
		if len(args) != 1 {
			return "known_command requires one argument", false, false
		}
		for _, c := range commands {
			if c == args[0] {
				return "true", true, false
			}
		}
		return "false", true, false
	case "help":
		return strings.Join(commands, "\n"), true, false
	case "quit":
		return "", true, true
	case "cputime":
		return fmt.Sprintf("%.3f", time.Since(start).Seconds()), true, false
	case "boardsize":
		if len(args) != 1 {
			return "boardsize requires one argument", false, false
		}
		return "boardsize change requires restart", false, false
	case "komi":
		return "", true, false
	case "clear_board":
		e.ClearBoard()
		return "", true, false
	case "undo":
		if err := e.Undo(); err != nil {
			return err.Error(), false, false
		}
		return "", true, false
	case "play":
		return doPlay(e, args)
	case "genmove":
		return doGenMove(e, args)
	case "showboard":
		return e.Position().String(), true, false
	default:
		return "unknown command", false, false
	}
}

func doPlay(e *engine.Engine, args []string) (string, bool, bool) {
	if len(args) != 2 {
		return "play requires color and coordinate", false, false
	}
	pt, err := board.ParseCoord(e.Geometry(), args[1])
	if err != nil {
		return err.Error(), false, false
	}
	if pt == board.PASS {
		e.Pass()
		return "", true, false
	}
	if err := e.Play(pt); err != nil {
		return err.Error(), false, false
	}
	return "", true, false
}

func doGenMove(e *engine.Engine, args []string) (string, bool, bool) {
	if len(args) != 1 {
		return "genmove requires a color argument", false, false
	}
	result := e.GenMove()
	if result.Resign {
		return "resign", true, false
	}
	if result.Move != board.PASS {
		if err := e.Play(result.Move); err != nil {
			return err.Error(), false, false
		}
	} else {
		e.Pass()
	}
	return board.StrCoord(e.Geometry(), result.Move), true, false
}
