package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/mcts"
)

// DumpTree renders the most recent GenMove's search tree as Graphviz DOT,
// for the `debug` subcommand's tree inspector named in spec §6.
func (e *Engine) DumpTree(w io.Writer) error {
	if e.lastTree == nil {
		return errors.New("engine: no search has run yet")
	}
	g := gographviz.NewGraph()
	if err := g.SetName("mcts"); err != nil {
		return errors.Wrap(err, "engine: dump tree")
	}
	if err := g.SetDir(true); err != nil {
		return errors.Wrap(err, "engine: dump tree")
	}
	if err := dumpNode(g, e.lastTree, e.lastTree.Root(), e.geom); err != nil {
		return errors.Wrap(err, "engine: dump tree")
	}
	_, err := io.WriteString(w, g.String())
	return err
}

func nodeName(id mcts.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}

func dumpNode(g *gographviz.Graph, t *mcts.Tree, id mcts.NodeID, geom board.Geometry) error {
	n := t.Node(id)
	label := fmt.Sprintf("\"%s v=%d w=%d wr=%.2f\"",
		board.StrCoord(geom, n.Move()), n.Visits(), n.Wins(), n.WinRate())
	attrs := map[string]string{"label": label}
	if err := g.AddNode("mcts", nodeName(id), attrs); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := dumpNode(g, t, child, geom); err != nil {
			return err
		}
		if err := g.AddEdge(nodeName(id), nodeName(child), true, nil); err != nil {
			return err
		}
	}
	return nil
}
