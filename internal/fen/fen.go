// Package fen is a thin, UCI-facing wrapper around the position
// package's FEN support. It exists as its own package because spec.md
// names FEN parsing/formatting as an external collaborator the core
// position representation must not assume is the only caller.
package fen

import "github.com/tidewaterlabs/gambit/internal/position"

// StartFEN is the standard initial position.
const StartFEN = position.StartFEN

// Parse parses a 6-field FEN string into a new Position.
func Parse(s string) (*position.Position, error) {
	return position.FromFEN(s)
}

// Format renders p as a 6-field FEN string.
func Format(p *position.Position) string {
	return p.FEN()
}
