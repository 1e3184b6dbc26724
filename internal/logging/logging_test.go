package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevelerDefaultsToInfo(t *testing.T) {
	require.Equal(t, zap.InfoLevel, GetLeveler().GetLevel("never-built"))
}

func TestSetLevelAppliesToBuiltLogger(t *testing.T) {
	logger := New("leveler-test")
	require.False(t, logger.Desugar().Core().Enabled(zap.DebugLevel))

	GetLeveler().SetLevel("leveler-test", zap.DebugLevel)
	require.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
	require.Equal(t, zap.DebugLevel, GetLeveler().GetLevel("leveler-test"))

	GetLeveler().SetLevel("leveler-test", zap.InfoLevel)
}

func TestNewKeepsExistingLevel(t *testing.T) {
	GetLeveler().SetLevel("keep-level", zap.WarnLevel)
	logger := New("keep-level")
	require.False(t, logger.Desugar().Core().Enabled(zap.InfoLevel))
	require.True(t, logger.Desugar().Core().Enabled(zap.WarnLevel))
}

func TestSetAll(t *testing.T) {
	a := New("set-all-a")
	b := New("set-all-b")

	SetAll(zap.ErrorLevel)
	require.False(t, a.Desugar().Core().Enabled(zap.WarnLevel))
	require.False(t, b.Desugar().Core().Enabled(zap.WarnLevel))

	SetAll(zap.InfoLevel)
}
