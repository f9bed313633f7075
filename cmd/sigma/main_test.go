package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, args := range [][]string{
		{"-protocol", "schnorr"},
		{"-protocol", "double"},
		{"-protocol", "general", "-n", "4"},
		{"-protocol", "general", "-n", "2", "-hash", "sha3"},
		{"-protocol", "binary", "-value", "0"},
		{"-protocol", "binary", "-value", "1"},
		{"-protocol", "zero", "-ring", "6", "-index", "5"},
	} {
		cfg, err := parseConfig(args)
		require.Nil(err, "%v", args)
		assert.Nil(run(cfg, logger), "%v", args)
	}

	cfg, err := parseConfig([]string{"-protocol", "binary", "-value", "2"})
	require.Nil(err)
	assert.ErrorIs(run(cfg, logger), errRejected)

	cfg, err = parseConfig([]string{"-protocol", "zero", "-ring", "3", "-index", "3"})
	require.Nil(err)
	assert.NotNil(run(cfg, logger))

	cfg, err = parseConfig([]string{"-protocol", "ring"})
	require.Nil(err)
	assert.NotNil(run(cfg, logger))

	_, err = parseConfig([]string{"-hash", "md5"})
	assert.NotNil(err)
}
