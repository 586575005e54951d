package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"9wFFyRfZBsuAha4YcuxcXLKwMxJR43S7fPfQLusDBzvT", "--add"})
	require.NoError(t, err)
	assert.Equal(t, "9wFFyRfZBsuAha4YcuxcXLKwMxJR43S7fPfQLusDBzvT", args.address)
	assert.True(t, args.add)
	assert.Equal(t, 15, args.depth)

	args, err = parseArgs([]string{"-l", "-s"})
	require.NoError(t, err)
	assert.True(t, args.list)
	assert.True(t, args.serum)

	args, err = parseArgs([]string{"addr", "--depth", "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, args.depth)
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	_, err := parseArgs([]string{"--frobnicate"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"--depth"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"--depth", "zero"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"addr1", "addr2"})
	assert.Error(t, err)
}
