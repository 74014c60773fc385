package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, edges map[string][]string) *Graph {
	t.Helper()
	g := NewGraph()
	for src := range edges {
		g.Add(&FileRecord{Path: src})
	}
	for src, deps := range edges {
		for _, dep := range deps {
			if _, ok := g.Lookup(dep); !ok {
				g.Add(&FileRecord{Path: dep})
			}
			g.AddDependency(src, dep)
		}
	}
	return g
}

func TestAddDependencySymmetry(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/main.c": {"/p/util.h"},
	})

	src, ok := g.Lookup("/p/main.c")
	require.True(t, ok)
	dep, ok := g.Lookup("/p/util.h")
	require.True(t, ok)

	assert.Equal(t, []string{"/p/util.h"}, src.Deps)
	assert.Equal(t, []string{"/p/main.c"}, dep.Dependents)

	// Re-adding the same edge must not duplicate it.
	g.AddDependency("/p/main.c", "/p/util.h")
	assert.Len(t, src.Deps, 1)
	assert.Len(t, dep.Dependents, 1)
}

func TestAddDependencyIgnoresUnknownNodes(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/main.c": nil,
	})

	g.AddDependency("/p/main.c", "/p/missing.h")
	g.AddDependency("/p/missing.c", "/p/main.c")

	r, ok := g.Lookup("/p/main.c")
	require.True(t, ok)
	assert.Empty(t, r.Deps)
	assert.Empty(t, r.Dependents)
	assert.Equal(t, 1, g.Len())
}

func TestEnsureInsertsDirtyPlaceholder(t *testing.T) {
	g := NewGraph()
	g.Add(&FileRecord{Path: "/p/main.c", Hash: "abc"})

	existing := g.Ensure("/p/main.c")
	assert.Equal(t, "abc", existing.Hash)
	assert.False(t, existing.Dirty)

	inserted := g.Ensure("/p/new.h")
	assert.True(t, inserted.Dirty)
	assert.Empty(t, inserted.Hash)
	assert.Equal(t, 2, g.Len())
}

func TestPropagateDirtyReachesTransitiveDependents(t *testing.T) {
	// main.c -> a.h -> b.h; other.c includes nothing shared.
	g := buildGraph(t, map[string][]string{
		"/p/main.c":  {"/p/a.h"},
		"/p/a.h":     {"/p/b.h"},
		"/p/other.c": {"/p/c.h"},
	})

	b, _ := g.Lookup("/p/b.h")
	b.Dirty = true
	g.PropagateDirty()

	for path, want := range map[string]bool{
		"/p/b.h":     true,
		"/p/a.h":     true,
		"/p/main.c":  true,
		"/p/other.c": false,
		"/p/c.h":     false,
	} {
		r, ok := g.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, want, r.Dirty, path)
	}
}

func TestPropagateDirtyTerminatesOnCycle(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/a.h":    {"/p/b.h"},
		"/p/b.h":    {"/p/a.h"},
		"/p/main.c": {"/p/a.h"},
	})

	a, _ := g.Lookup("/p/a.h")
	a.Dirty = true
	g.PropagateDirty()

	for _, path := range []string{"/p/a.h", "/p/b.h", "/p/main.c"} {
		r, _ := g.Lookup(path)
		assert.True(t, r.Dirty, path)
	}
}

func TestTopoOrderDirtyEmptyWhenClean(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/main.c": {"/p/a.h"},
	})

	order, dropped := g.TopoOrderDirty()
	assert.Empty(t, order)
	assert.Empty(t, dropped)
}

func TestTopoOrderDirtyRespectsDependencies(t *testing.T) {
	// a_main.c depends on z_gen.c, so lexical order alone would be wrong
	// here and the deps edge must win.
	g := buildGraph(t, map[string][]string{
		"/p/a_main.c": {"/p/z_gen.c"},
		"/p/z_gen.c":  nil,
	})

	z, _ := g.Lookup("/p/z_gen.c")
	z.Dirty = true
	g.PropagateDirty()

	order, dropped := g.TopoOrderDirty()
	require.Empty(t, dropped)
	assert.Equal(t, []string{"/p/z_gen.c", "/p/a_main.c"}, order)
}

func TestTopoOrderDirtyLexicalTieBreak(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/c.c": {"/p/shared.h"},
		"/p/a.c": {"/p/shared.h"},
		"/p/b.c": {"/p/shared.h"},
	})

	h, _ := g.Lookup("/p/shared.h")
	h.Dirty = true
	g.PropagateDirty()

	order, dropped := g.TopoOrderDirty()
	require.Empty(t, dropped)
	assert.Equal(t, []string{"/p/a.c", "/p/b.c", "/p/c.c"}, order)
}

func TestTopoOrderDirtyFiltersHeaders(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/main.c": {"/p/a.h"},
	})

	a, _ := g.Lookup("/p/a.h")
	a.Dirty = true
	g.PropagateDirty()

	order, dropped := g.TopoOrderDirty()
	require.Empty(t, dropped)
	assert.Equal(t, []string{"/p/main.c"}, order)
}

func TestTopoOrderDirtyDropsCycleMembers(t *testing.T) {
	// Two sources depending on each other can never reach zero in-degree.
	// An independent dirty source must still come out in the order.
	g := buildGraph(t, map[string][]string{
		"/p/a.c":    {"/p/b.c"},
		"/p/b.c":    {"/p/a.c"},
		"/p/free.c": nil,
	})

	for _, p := range []string{"/p/a.c", "/p/free.c"} {
		r, _ := g.Lookup(p)
		r.Dirty = true
	}
	g.PropagateDirty()

	order, dropped := g.TopoOrderDirty()
	assert.Equal(t, []string{"/p/free.c"}, order)
	assert.Equal(t, []string{"/p/a.c", "/p/b.c"}, dropped)
}

func TestTopoOrderDirtyIncludesCleanDownstream(t *testing.T) {
	// b.c is clean but sits downstream of the dirty header, so the closure
	// must pull it in even before propagation runs.
	g := buildGraph(t, map[string][]string{
		"/p/b.c": {"/p/a.h"},
	})

	a, _ := g.Lookup("/p/a.h")
	a.Dirty = true

	order, dropped := g.TopoOrderDirty()
	require.Empty(t, dropped)
	assert.Equal(t, []string{"/p/b.c"}, order)
}

func TestMarkAllDirty(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"/p/main.c": {"/p/a.h"},
	})

	g.MarkAllDirty()
	for r := range g.Records() {
		assert.True(t, r.Dirty, r.Path)
	}
}

func TestHasCxxSources(t *testing.T) {
	g := NewGraph()
	g.Add(&FileRecord{Path: "/p/main.c"})
	g.Add(&FileRecord{Path: "/p/a.hpp"})
	assert.False(t, g.HasCxxSources(), "headers alone must not flip the link driver")

	g.Add(&FileRecord{Path: "/p/extra.cpp"})
	assert.True(t, g.HasCxxSources())
}

func TestPathsSorted(t *testing.T) {
	g := NewGraph()
	for _, p := range []string{"/p/z.c", "/p/a.c", "/p/m.h"} {
		g.Add(&FileRecord{Path: p})
	}
	assert.Equal(t, []string{"/p/a.c", "/p/m.h", "/p/z.c"}, g.Paths())
}
