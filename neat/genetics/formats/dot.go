// Package formats renders a genome's topology in external graph formats for
// debugging, grounded on yaricom-goNEAT's neat/network/formats package.
package formats

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/vspecky/hyper-darwin/neat/genetics"
)

// WriteDOT renders g's node/connection graph using the GraphViz DOT
// encoding, via gonum's graph.Graph-to-DOT marshaler — g need only
// implement graph.Graph, which *genetics.Genome does.
func WriteDOT(w io.Writer, g *genetics.Genome) error {
	data, err := dot.Marshal(g, g.DOTID(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal genome to DOT")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "failed to write DOT output")
}
