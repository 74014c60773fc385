// Package domain contains the core domain models for the incremental build
// graph: file records, dependency edges, dirty propagation, and build
// ordering.
package domain

import (
	"iter"
	"slices"
	"sort"
)

// Graph owns every file record discovered for a project, addressed by
// canonical absolute path. Edges between records are stored as path strings
// rather than pointers so mutual-inclusion cycles are representable, and all
// traversals use explicit queues and seen-sets so they terminate on cyclic
// input.
type Graph struct {
	nodes map[string]*FileRecord
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*FileRecord),
	}
}

// Add inserts a record into the graph, replacing any record with the same
// path.
func (g *Graph) Add(r *FileRecord) {
	g.nodes[r.Path] = r
}

// Ensure returns the record for path, lazily inserting one with an empty
// hash and dirty set when the path was discovered transitively and has not
// been walked yet.
func (g *Graph) Ensure(path string) *FileRecord {
	if r, ok := g.nodes[path]; ok {
		return r
	}
	r := &FileRecord{Path: path, Dirty: true}
	g.nodes[path] = r
	return r
}

// Lookup returns the record for path, if present.
func (g *Graph) Lookup(path string) (*FileRecord, bool) {
	r, ok := g.nodes[path]
	return r, ok
}

// Len returns the number of records in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Paths returns every node path in lexical order.
func (g *Graph) Paths() []string {
	paths := make([]string, 0, len(g.nodes))
	for p := range g.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Records yields every record in lexical path order.
func (g *Graph) Records() iter.Seq[*FileRecord] {
	return func(yield func(*FileRecord) bool) {
		for _, p := range g.Paths() {
			if !yield(g.nodes[p]) {
				return
			}
		}
	}
}

// AddDependency records a forward edge from src to dep and immediately the
// matching reverse edge, preserving the symmetry invariant: dep is in
// src.Deps iff src is in dep.Dependents. Both records must already exist.
func (g *Graph) AddDependency(src, dep string) {
	from, ok := g.nodes[src]
	if !ok {
		return
	}
	to, ok := g.nodes[dep]
	if !ok {
		return
	}
	if !slices.Contains(from.Deps, dep) {
		from.Deps = append(from.Deps, dep)
	}
	if !slices.Contains(to.Dependents, src) {
		to.Dependents = append(to.Dependents, src)
	}
}

// MarkAllDirty marks every record dirty unconditionally. Used when the
// toolchain configuration changed and the hash check must be bypassed.
func (g *Graph) MarkAllDirty() {
	for _, r := range g.nodes {
		r.Dirty = true
	}
}

// PropagateDirty marks every record reachable from a dirty record via
// dependents edges as dirty. Breadth-first with a seen-set, so include
// cycles are marked exactly once and the traversal terminates. Propagation
// only reads edges; it never rewrites them.
func (g *Graph) PropagateDirty() {
	queue := make([]string, 0, len(g.nodes))
	for p, r := range g.nodes {
		if r.Dirty {
			queue = append(queue, p)
		}
	}
	seen := make(map[string]struct{}, len(queue))
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		node, ok := g.nodes[p]
		if !ok {
			continue
		}
		for _, dep := range node.Dependents {
			if d, ok := g.nodes[dep]; ok && !d.Dirty {
				d.Dirty = true
				queue = append(queue, dep)
			}
		}
	}
}

// dirtyClosure returns the dirty set closed under dependents edges: every
// node downstream of a dirty node, whether or not propagation already
// marked it.
func (g *Graph) dirtyClosure() map[string]struct{} {
	closure := make(map[string]struct{})
	var stack []string
	for p, r := range g.nodes {
		if r.Dirty {
			closure[p] = struct{}{}
			stack = append(stack, p)
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node, ok := g.nodes[p]
		if !ok {
			continue
		}
		for _, dep := range node.Dependents {
			if _, ok := closure[dep]; !ok {
				closure[dep] = struct{}{}
				stack = append(stack, dep)
			}
		}
	}
	return closure
}

// TopoOrderDirty computes a build order for the subset of the graph that
// needs rebuilding: the dirty set closed under dependents, ordered by Kahn's
// algorithm over deps edges restricted to that universe, filtered to
// compilable sources. Ties between simultaneously-ready nodes break
// lexically so the order is reproducible.
//
// Nodes trapped in a true include cycle never reach zero in-degree; they are
// returned separately in dropped (sources only) instead of appearing in the
// order.
func (g *Graph) TopoOrderDirty() (order, dropped []string) {
	universe := g.dirtyClosure()

	inDegree := make(map[string]int, len(universe))
	for p := range universe {
		inDegree[p] = 0
	}
	for p := range universe {
		node, ok := g.nodes[p]
		if !ok {
			continue
		}
		for _, dep := range node.Deps {
			// Edges leaving the universe don't count.
			if _, ok := universe[dep]; ok {
				inDegree[p]++
			}
		}
	}

	var ready []string
	for p, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, p)
		}
	}
	sort.Strings(ready)

	sorted := make([]string, 0, len(universe))
	for len(ready) > 0 {
		p := ready[0]
		ready = ready[1:]
		sorted = append(sorted, p)
		node, ok := g.nodes[p]
		if !ok {
			continue
		}
		for _, dep := range node.Dependents {
			if _, ok := universe[dep]; !ok {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				at, _ := slices.BinarySearch(ready, dep)
				ready = slices.Insert(ready, at, dep)
			}
		}
	}

	emitted := make(map[string]struct{}, len(sorted))
	for _, p := range sorted {
		emitted[p] = struct{}{}
		if IsSource(p) {
			order = append(order, p)
		}
	}
	for p := range universe {
		if _, ok := emitted[p]; !ok && IsSource(p) {
			dropped = append(dropped, p)
		}
	}
	sort.Strings(dropped)
	return order, dropped
}

// HasCxxSources reports whether any C++-family source exists anywhere in the
// graph. Linking uses the C++ driver for the whole project when it does.
func (g *Graph) HasCxxSources() bool {
	for p := range g.nodes {
		if IsSource(p) && DriverFor(p) == DriverCPP {
			return true
		}
	}
	return false
}
