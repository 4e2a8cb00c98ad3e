package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectFilter(t *testing.T) {
	assert.Nil(t, ParseProjectFilter(""))
	assert.Nil(t, ParseProjectFilter("all"))
	assert.Nil(t, ParseProjectFilter("abc"))

	filter := ParseProjectFilter("12")
	require.NotNil(t, filter)
	assert.Equal(t, uint(12), *filter)
}

func TestParseUserFilter(t *testing.T) {
	assert.Nil(t, ParseUserFilter(""))
	assert.Nil(t, ParseUserFilter("-3"))

	filter := ParseUserFilter("7")
	require.NotNil(t, filter)
	assert.Equal(t, uint(7), *filter)
}
