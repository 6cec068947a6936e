package movegen

import "github.com/tidewaterlabs/gambit/internal/position"

// Perft counts the leaf nodes reachable from p at the given depth, a
// standard move-generator correctness check: the counts at each depth
// from the standard starting position are well known and fixed.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateAll(p, &list)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		child := p.Clone()
		child.MakeMove(list.At(i))
		nodes += Perft(child, depth-1)
	}
	return nodes
}
