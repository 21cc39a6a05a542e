package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllEmbedded(t *testing.T) {
	specs, err := LoadAll()
	require.NoError(t, err)

	assert.Greater(t, specs.Wave.Rows, 0)
	assert.Greater(t, specs.Wave.Columns, 0)
	assert.Greater(t, specs.Wave.FireDelayTicks, 0)
	assert.Greater(t, specs.Wave.KillScore, 0)

	assert.Greater(t, specs.Ship.Lives, 0)
	assert.NotEmpty(t, specs.Ship.Sprite)

	assert.Negative(t, specs.Bullets.Player.Speed, "player shots travel up")
	assert.Positive(t, specs.Bullets.Enemy.Speed, "enemy shots travel down")
	assert.Greater(t, specs.Bullets.Player.CooldownTicks, 0)
	assert.Greater(t, specs.Bullets.Enemy.CooldownTicks, 0)
}

func TestLoadSpecUnknownFile(t *testing.T) {
	_, err := LoadSpec[WaveSpec]("missing.yaml")
	require.Error(t, err)
}

func TestValidateRejectsDegenerateSpecs(t *testing.T) {
	valid, err := LoadAll()
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(s *Specs)
	}{
		{"zero_rows", func(s *Specs) { s.Wave.Rows = 0 }},
		{"negative_columns", func(s *Specs) { s.Wave.Columns = -1 }},
		{"zero_invader_size", func(s *Specs) { s.Wave.Invader.Width = 0 }},
		{"zero_fire_delay", func(s *Specs) { s.Wave.FireDelayTicks = 0 }},
		{"zero_lives", func(s *Specs) { s.Ship.Lives = 0 }},
		{"player_shot_downward", func(s *Specs) { s.Bullets.Player.Speed = 8 }},
		{"enemy_shot_upward", func(s *Specs) { s.Bullets.Enemy.Speed = -5 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := *valid
			c.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestWatcherLifecycle(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	// Close is idempotent.
	require.NoError(t, w.Close())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher("does-not-exist")
	require.Error(t, err)
}

func TestSpecFileFilter(t *testing.T) {
	assert.True(t, isSpecFile("wave.yaml"))
	assert.True(t, isSpecFile("SHIP.YML"))
	assert.False(t, isSpecFile("notes.txt"))
	assert.True(t, isScriptFile("difficulty.tengo"))
	assert.False(t, isScriptFile("difficulty.go"))
}
