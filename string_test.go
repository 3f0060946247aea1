package aocparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringCapture(t *testing.T) {
	p := StringCapture(Plus(Alpha))
	assert.Equal(t, "hello", mustParse(t, p, "hello"))
}
