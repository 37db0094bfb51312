package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vspecky/hyper-darwin/neat/activation"
)

func TestNodeActivateInputPassesThrough(t *testing.T) {
	n := NewNode(1, 0, 0.5, activation.Sigmoid)
	assert.Equal(t, 3.7, n.Activate(3.7))
	assert.Equal(t, -1.2, n.Activate(-1.2))
}

func TestNodeActivateHiddenAppliesKind(t *testing.T) {
	n := NewNode(5, 0.5, 0.5, activation.Absolute)
	assert.Equal(t, 2.0, n.Activate(-2.0))
}

func TestNodeEqual(t *testing.T) {
	a := NewNode(3, 0.5, 0.5, activation.Linear)
	b := NewNode(3, 0.9, 0.1, activation.Sine)
	c := NewNode(4, 0.5, 0.5, activation.Linear)

	assert.True(t, a.Equal(b), "nodes with the same innovation id are equal regardless of coordinates or activation")
	assert.False(t, a.Equal(c))
}

func TestNodeString(t *testing.T) {
	n := NewNode(42, 0, 0, activation.Linear)
	assert.Equal(t, "Node(42)", n.String())
}
