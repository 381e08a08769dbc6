package ibparse

import (
	"io"

	"github.com/xlab/treeprint"
)

// BuildTree walks words like Parse but returns the IB hierarchy instead of
// the disassembly. Chained IBs are siblings, nested IBs are children. A
// decode error is recorded as a leaf of the IB it happened in.
func BuildTree(words []uint32, cfg Config) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue("command buffer")

	p := NewParser(cfg)
	p.tree = tree
	_ = p.Parse(io.Discard, words)
	return tree
}
