package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "betfair colombia", Canonicalize("BETFAIR Colombia"))
	assert.Equal(t, "betfair colombia", Canonicalize("  betfair   colombia  "))
	assert.Equal(t, "", Canonicalize("   "))
}
