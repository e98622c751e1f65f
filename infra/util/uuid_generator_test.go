package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_GenerateID(t *testing.T) {
	gen := &UUIDGenerator{}

	a := gen.GenerateID()
	b := gen.GenerateID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
