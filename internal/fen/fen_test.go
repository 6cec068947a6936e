package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndFormatStartpos(t *testing.T) {
	p, err := Parse(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, StartFEN, Format(p))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("garbage")
	assert.Error(t, err)
}
