// Package enumerate implements the CLI's `-a 0` baseline (spec §6 "CLI
// surface": "0 = enumerate"), a brute-force elementary-path search used to
// sanity-check the branch-and-price solver (`-a 1`) on small instances.
// The backtracking DFS-with-visited-marking shape follows the teacher's
// dfs.DetectCycles traversal, adapted from core.Graph's string-keyed
// adjacency to instance.Graph's dense int-indexed one.
package enumerate

import (
	"sort"

	"github.com/katalvlaran/toppricer/instance"
)

// Run enumerates every elementary source->dest path within budget, then
// greedily assembles up to FleetSize vertex-disjoint routes ranked by
// prize density (spec §6 marks the enumerate baseline "optional / may be
// fixed"; this is a heuristic, not an exact solver).
func Run(inst *instance.Instance) []instance.Route {
	g := inst.Graph()
	n := g.N()
	src, dst := inst.Source(), inst.Dest()

	var all []instance.Route
	visited := make([]bool, n)
	path := make([]int, 0, n)

	var dfs func(u int, length float64)
	dfs = func(u int, length float64) {
		path = append(path, u)
		if u == dst {
			all = append(all, instance.NewRoute(inst, path, 0))
		} else {
			visited[u] = true
			for _, v32 := range g.Out(u) {
				v := int(v32)
				if visited[v] {
					continue
				}
				w := g.At(u, v)
				if length+w > inst.Budget()+1e-9 {
					continue
				}
				dfs(v, length+w)
			}
			visited[u] = false
		}
		path = path[:len(path)-1]
	}
	visited[src] = true
	dfs(src, 0)

	sort.Slice(all, func(i, j int) bool {
		return density(all[i]) > density(all[j])
	})

	used := make([]bool, n)

	var chosen []instance.Route
	for _, r := range all {
		if len(chosen) >= inst.FleetSize() {
			break
		}
		if disjoint(r, used, src, dst) {
			chosen = append(chosen, r)
			mark(r, used, src, dst)
		}
	}

	return chosen
}

func density(r instance.Route) float64 {
	if r.Length == 0 {
		return r.Score
	}

	return r.Score / r.Length
}

func disjoint(r instance.Route, used []bool, src, dst int) bool {
	for _, v := range r.Path {
		if v == src || v == dst {
			continue
		}
		if used[v] {
			return false
		}
	}

	return true
}

func mark(r instance.Route, used []bool, src, dst int) {
	for _, v := range r.Path {
		if v == src || v == dst {
			continue
		}
		used[v] = true
	}
}
