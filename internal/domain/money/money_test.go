package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAvoidsBinaryDrift(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestTimes(t *testing.T) {
	assert.Equal(t, 59.7, Float(Times(19.9, 3)))
}
