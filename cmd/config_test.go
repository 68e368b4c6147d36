package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFileConfig_ParsesDaysHoursAndSeed(t *testing.T) {
	path := writeYAML(t, "days: 3\nhours_per_day: 6\nseed: 99\n")

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Days)
	assert.Equal(t, 6, cfg.HoursPerDay)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.HasSeed)
}

func TestLoadFileConfig_SeedAbsentLeavesHasSeedFalse(t *testing.T) {
	path := writeYAML(t, "days: 2\nhours_per_day: 4\n")

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.HasSeed)
}

func TestLoadFileConfig_SeedZeroIsStillAnExplicitSeed(t *testing.T) {
	path := writeYAML(t, "seed: 0\n")

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadFileConfig_MissingFileErrors(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
