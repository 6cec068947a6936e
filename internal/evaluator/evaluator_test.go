package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewaterlabs/gambit/internal/position"
)

func TestEvaluateStartposIsSymmetric(t *testing.T) {
	p := position.New()
	assert.Equal(t, 0, int(Evaluate(p)), "startpos is materially and positionally symmetric")
}

func TestEvaluateFavorsExtraMaterial(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(Evaluate(p)), 0)
}

func TestEvaluateIsSideRelative(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	white := Evaluate(p)

	p2, err := position.FromFEN("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	assert.NoError(t, err)
	black := Evaluate(p2)

	assert.Equal(t, white, -black)
}
