package kzg10

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSetupConfig(t *testing.T) {
	cfg, err := ParseSetupConfig(strings.NewReader(`
max_degree: 1024
degree_bounds: radix2
produce_g2_powers: true
`))
	require.NoError(t, err)
	require.Equal(t, 1024, cfg.MaxDegree)
	require.Equal(t, DegreeBoundsRadix2, cfg.Bounds.Mode)
	require.True(t, cfg.ProduceG2Powers)
}

func TestParseSetupConfigBoundList(t *testing.T) {
	cfg, err := ParseSetupConfig(strings.NewReader(`
max_degree: 64
degree_bounds: [14, 2, 6]
`))
	require.NoError(t, err)
	require.Equal(t, DegreeBoundsList, cfg.Bounds.Mode)
	require.Equal(t, []int{14, 2, 6}, cfg.Bounds.List)
	require.Equal(t, []int{2, 6, 14}, cfg.Bounds.Resolve(cfg.MaxDegree))
	require.False(t, cfg.ProduceG2Powers)
}

func TestParseSetupConfigDefaults(t *testing.T) {
	cfg, err := ParseSetupConfig(strings.NewReader(`max_degree: 8`))
	require.NoError(t, err)
	require.Equal(t, DegreeBoundsNone, cfg.Bounds.Mode)
	require.Nil(t, cfg.Bounds.Resolve(cfg.MaxDegree))
}

func TestParseSetupConfigUnknownMode(t *testing.T) {
	_, err := ParseSetupConfig(strings.NewReader(`
max_degree: 8
degree_bounds: fibonacci
`))
	require.ErrorContains(t, err, "unknown degree bounds mode")
}

func TestParseSetupConfigZeroDegree(t *testing.T) {
	_, err := ParseSetupConfig(strings.NewReader(`max_degree: 0`))
	require.ErrorIs(t, err, ErrDegreeIsZero)
}
