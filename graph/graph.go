package graph

import (
	"slices"

	"github.com/pkg/errors"
)

// Graph is an undirected graph over the vertices [0, n), stored as adjacency
// lists in edge insertion order.
type Graph struct {
	adj [][]int
}

func New(n int) *Graph {
	if n < 0 {
		panic(errors.Errorf("graph size must not be negative, got %d", n))
	}
	return &Graph{
		adj: make([][]int, n),
	}
}

func (me *Graph) Len() int {
	return len(me.adj)
}

// AddEdge connects src and dest. Adding an edge twice, in either direction,
// has no effect.
func (me *Graph) AddEdge(src, dest int) {
	me.mustHaveVertex(src)
	me.mustHaveVertex(dest)

	if !slices.Contains(me.adj[src], dest) {
		me.adj[src] = append(me.adj[src], dest)
	}
	if !slices.Contains(me.adj[dest], src) {
		me.adj[dest] = append(me.adj[dest], src)
	}
}

func (me *Graph) Neighbors(v int) []int {
	me.mustHaveVertex(v)
	return slices.Clone(me.adj[v])
}

// DFS returns the vertices reachable from start in depth-first visitation
// order. Neighbors are explored in the order their edges were added.
func (me *Graph) DFS(start int) []int {
	me.mustHaveVertex(start)

	visited := make([]bool, me.Len())
	var visitOrder []int
	me.dfs(start, visited, &visitOrder)
	return visitOrder
}

func (me *Graph) dfs(v int, visited []bool, visitOrder *[]int) {
	if visited[v] {
		return
	}

	visited[v] = true
	*visitOrder = append(*visitOrder, v)

	for _, neighbor := range me.adj[v] {
		me.dfs(neighbor, visited, visitOrder)
	}
}

func (me *Graph) mustHaveVertex(v int) {
	if v < 0 || v >= me.Len() {
		panic(errors.Errorf("vertex %d out of range [0, %d)", v, me.Len()))
	}
}
