package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/temperament/core"
)

// Components partitions the notes of g into groups connected by
// definitions in either direction. Each group is sorted by name and the
// groups are ordered by their first name.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, root := range g.Notes() {
		if w.state[root] != White {
			continue
		}
		w.component = nil
		if err := w.visit(root, "", 0); err != nil {
			return nil, fmt.Errorf("dfs: Components: %w", err)
		}
		group := append([]string(nil), w.component...)
		sort.Strings(group)
		out = append(out, group)
	}

	return out, nil
}

// Reachable reports the notes connected to name, including name itself,
// sorted. A name that is not in g is reachable only from itself.
func Reachable(g *core.Graph, name string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNote(name) {
		return []string{name}, nil
	}
	if err := w.visit(name, "", 0); err != nil {
		return nil, fmt.Errorf("dfs: Reachable: %w", err)
	}
	sort.Strings(w.component)
	return w.component, nil
}
