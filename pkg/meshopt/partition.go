package meshopt

import "container/heap"

// PartitionOptions exposes the three boolean knobs the source library
// keeps as internal constants (spec §9 Open Question): this Go port makes
// them public fields since a caller tuning LOD clustering granularity is
// a realistic need, not an internal implementation detail.
type PartitionOptions struct {
	// ScoreExternal prioritizes merges that minimize the group's external
	// boundary (shared-vertex edges leaving the group) rather than simply
	// maximizing shared vertex count.
	ScoreExternal bool
	// ScoreSmallest breaks merge ties in favor of the smaller neighbor
	// group rather than the one with the highest shared-vertex count.
	ScoreSmallest bool
	// SortExternal sorts the initial heap by external boundary size
	// instead of total unique vertex count.
	SortExternal bool
}

// Partition groups clusters (each described as a run of vertex ids in
// clusterIndices, bounded by clusterOffsets) into coarser partitions of
// approximately targetSize vertices each, using shared-vertex adjacency
// and a heap-driven greedy merge (spec §4.K). It returns the number of
// partitions and fills partitionIDs (len == number of clusters) with a
// dense partition id per original cluster.
func Partition(clusterIndices []uint32, clusterOffsets []uint32, vertexCount, targetSize int, opts PartitionOptions) (partitionCount int, partitionIDs []uint32) {
	clusterCount := len(clusterOffsets) - 1
	mustf(clusterCount >= 0, "Partition", "clusterOffsets must have at least one entry")

	clusterVerts := make([][]uint32, clusterCount)
	for i := 0; i < clusterCount; i++ {
		clusterVerts[i] = clusterIndices[clusterOffsets[i]:clusterOffsets[i+1]]
	}

	// Step 1: for each vertex, which clusters reference it.
	vertClusters := make([][]int32, vertexCount)
	for ci, verts := range clusterVerts {
		for _, v := range verts {
			vertClusters[v] = append(vertClusters[v], int32(ci))
		}
	}

	// Step 2: cluster-to-cluster adjacency weighted by shared vertex count.
	adjacency := make([]map[int32]int32, clusterCount)
	for i := range adjacency {
		adjacency[i] = make(map[int32]int32)
	}
	for v := 0; v < vertexCount; v++ {
		owners := vertClusters[v]
		for _, a := range owners {
			for _, b := range owners {
				if a != b {
					adjacency[a][b]++
				}
			}
		}
	}

	groups := newMergeGroups(clusterCount, clusterVerts)
	pq := newGroupHeap(groups, opts.SortExternal, vertClusters)
	heap.Init(pq)

	for pq.Len() > 0 {
		g := heap.Pop(pq).(*mergeGroup)
		if g.merged || g.size() >= targetSize {
			continue
		}

		bestOther := int32(-1)
		var bestScore int32 = -1
		for other, shared := range groupAdjacency(g, adjacency, groups) {
			og := groups[other]
			if og.merged || og == g {
				continue
			}
			if g.size()+og.size() > targetSize*3/2 {
				continue
			}
			score := shared
			if opts.ScoreExternal {
				score = -externalBoundary(g, og, adjacency, groups)
			}
			// Ties go to the smaller group under ScoreSmallest, then to the
			// lower cluster id, so the result does not depend on map order.
			better := bestOther < 0 || score > bestScore
			if !better && score == bestScore {
				if opts.ScoreSmallest && og.size() != groups[bestOther].size() {
					better = og.size() < groups[bestOther].size()
				} else {
					better = other < bestOther
				}
			}
			if better {
				bestScore, bestOther = score, other
			}
		}

		if bestOther < 0 {
			continue
		}
		mergeGroups(g, groups[bestOther])
		heap.Push(pq, g)
	}

	// Dense numbering of surviving roots.
	rootID := make(map[*mergeGroup]uint32)
	partitionIDs = make([]uint32, clusterCount)
	for i, g := range groups {
		root := g.find()
		id, ok := rootID[root]
		if !ok {
			id = uint32(len(rootID))
			rootID[root] = id
		}
		partitionIDs[i] = id
	}
	return len(rootID), partitionIDs
}

// mergeGroup is a union-find node tracking the set of original clusters
// merged together and their combined unique vertex count.
type mergeGroup struct {
	parent   *mergeGroup
	members  []int32
	vertices map[uint32]bool
	merged   bool
	index    int // heap index, maintained by container/heap
}

func (g *mergeGroup) find() *mergeGroup {
	r := g
	for r.parent != nil {
		r = r.parent
	}
	// path compression
	for g.parent != nil {
		next := g.parent
		g.parent = r
		g = next
	}
	return r
}

func (g *mergeGroup) size() int { return len(g.vertices) }

func newMergeGroups(clusterCount int, clusterVerts [][]uint32) []*mergeGroup {
	groups := make([]*mergeGroup, clusterCount)
	for i := range groups {
		vs := make(map[uint32]bool, len(clusterVerts[i]))
		for _, v := range clusterVerts[i] {
			vs[v] = true
		}
		groups[i] = &mergeGroup{members: []int32{int32(i)}, vertices: vs}
	}
	return groups
}

func mergeGroups(a, b *mergeGroup) {
	b.merged = true
	b.parent = a
	for v := range b.vertices {
		a.vertices[v] = true
	}
	a.members = append(a.members, b.members...)
}

// groupAdjacency returns, for a group g, the union of its members'
// adjacency weighted by shared vertex count, keyed by *cluster* id (the
// representative original cluster index owning each neighboring group).
func groupAdjacency(g *mergeGroup, adjacency []map[int32]int32, groups []*mergeGroup) map[int32]int32 {
	out := make(map[int32]int32)
	for _, m := range g.members {
		for other, w := range adjacency[m] {
			root := groups[other].find()
			// Use the root's first member as the canonical neighbor id.
			out[root.members[0]] += w
		}
	}
	return out
}

func externalBoundary(g, og *mergeGroup, adjacency []map[int32]int32, groups []*mergeGroup) int32 {
	// Approximation: external boundary is the vertex count of the merged
	// group that is *not* shared between g and og.
	shared := int32(0)
	for v := range g.vertices {
		if og.vertices[v] {
			shared++
		}
	}
	return int32(g.size()+og.size()) - 2*shared
}

// groupHeap is a container/heap.Interface over mergeGroups, ordered
// ascending by priority so the lowest-priority group is always merged
// next (spec §4.K step 2). By default priority is the group's unique
// vertex count; when sortExternal is set, priority is instead the
// group's external boundary size (vertices also referenced by a cluster
// outside the group) matching PartitionOptions.SortExternal.
type groupHeap struct {
	groups       []*mergeGroup
	sortExternal bool
	vertClusters [][]int32
}

func newGroupHeap(groups []*mergeGroup, sortExternal bool, vertClusters [][]int32) *groupHeap {
	h := &groupHeap{groups: append([]*mergeGroup(nil), groups...), sortExternal: sortExternal, vertClusters: vertClusters}
	for i, g := range h.groups {
		g.index = i
	}
	return h
}

func (h *groupHeap) Len() int { return len(h.groups) }
func (h *groupHeap) Less(i, j int) bool {
	if h.sortExternal {
		return groupExternalBoundary(h.groups[i], h.vertClusters) < groupExternalBoundary(h.groups[j], h.vertClusters)
	}
	return h.groups[i].size() < h.groups[j].size()
}

// groupExternalBoundary counts the vertices of g that are also referenced
// by at least one cluster outside g, i.e. the vertices that would still
// sit on a partition boundary if g were emitted as its own partition.
func groupExternalBoundary(g *mergeGroup, vertClusters [][]int32) int {
	member := make(map[int32]bool, len(g.members))
	for _, m := range g.members {
		member[m] = true
	}
	count := 0
	for v := range g.vertices {
		for _, owner := range vertClusters[v] {
			if !member[owner] {
				count++
				break
			}
		}
	}
	return count
}
func (h *groupHeap) Swap(i, j int) {
	h.groups[i], h.groups[j] = h.groups[j], h.groups[i]
	h.groups[i].index = i
	h.groups[j].index = j
}
func (h *groupHeap) Push(x any) {
	g := x.(*mergeGroup)
	g.index = len(h.groups)
	h.groups = append(h.groups, g)
}
func (h *groupHeap) Pop() any {
	old := h.groups
	n := len(old)
	g := old[n-1]
	h.groups = old[:n-1]
	return g
}
