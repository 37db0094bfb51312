package genetics

// histConnection is a historical record of a connection that has been
// created at least once during this run, keyed by its endpoints so a
// later, independent occurrence of the same structural mutation can be
// recognized and assigned the same innovation id.
type histConnection struct {
	innov    Id
	from, to Id
}

// NodeSplit is the result of registering a node-split mutation: the new
// node's innovation id, and the innovation ids of the two connections that
// replace the split connection.
type NodeSplit struct {
	Node    Id
	InConn  Id
	OutConn Id
}

// History is the process-local, population-wide innovation registry. It
// assigns monotonically increasing innovation numbers to new structural
// mutations, and recognizes when two genomes independently perform the
// same mutation within a run so that their resulting genes share an
// innovation id — the alignment crossover and speciation depend on.
//
// History is owned exclusively by Population and is only ever borrowed
// mutably for the duration of a single mutation call.
type History struct {
	connHistory   []histConnection
	nextNodeInnov Id
	nextConnInnov Id
}

// NewHistory seeds a History for a genome topology of the given input/
// output arity: the registry is pre-populated with the full input
// (including bias) to output connection set produced by a freshly seeded
// genome, and the node-innovation cursor starts past the seed nodes.
func NewHistory(inputs, outputs uint32) *History {
	h := &History{
		connHistory:   make([]histConnection, 0, (inputs+1)*outputs),
		nextNodeInnov: inputs + outputs + 2,
		nextConnInnov: (inputs+1)*outputs + 1,
	}

	innov := Id(1)
	for in := Id(1); in <= inputs+1; in++ {
		for out := inputs + 2; out < inputs+outputs+2; out++ {
			h.connHistory = append(h.connHistory, histConnection{innov: innov, from: in, to: out})
			innov++
		}
	}

	return h
}

// Len reports how many connection innovations this History has recorded, for tests and diagnostics.
func (h *History) Len() int {
	return len(h.connHistory)
}

// RegisterConn returns the innovation id for a connection from -> to. If an
// identical structural mutation has already occurred anywhere in this run
// (by either genome), its existing innovation id is reused; otherwise a new
// id is allocated and recorded.
func (h *History) RegisterConn(from, to Id) Id {
	for _, c := range h.connHistory {
		if c.from == from && c.to == to {
			return c.innov
		}
	}

	innov := h.nextConnInnov
	h.nextConnInnov++
	h.connHistory = append(h.connHistory, histConnection{innov: innov, from: from, to: to})
	return innov
}

// RegisterNodeSplit returns the node and connection innovation ids for
// splitting conn with a new node. If this exact split — a connection
// conn.From -> X and X -> conn.To for some intermediate node X — has
// already been recorded in this run, its ids are reused; otherwise a new
// node innovation and two new connection innovations are allocated and
// recorded.
func (h *History) RegisterNodeSplit(conn Connection) NodeSplit {
	for _, fromConn := range h.connHistory {
		if fromConn.from != conn.From {
			continue
		}
		for _, toConn := range h.connHistory {
			if toConn.to == conn.To && fromConn.to == toConn.from {
				return NodeSplit{Node: fromConn.to, InConn: fromConn.innov, OutConn: toConn.innov}
			}
		}
	}

	newNode := h.nextNodeInnov
	h.nextNodeInnov++

	newIn := h.nextConnInnov
	h.nextConnInnov++
	h.connHistory = append(h.connHistory, histConnection{innov: newIn, from: conn.From, to: newNode})

	newOut := h.nextConnInnov
	h.nextConnInnov++
	h.connHistory = append(h.connHistory, histConnection{innov: newOut, from: newNode, to: conn.To})

	return NodeSplit{Node: newNode, InConn: newIn, OutConn: newOut}
}
