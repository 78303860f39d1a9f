package tolerance

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tol := Default()
	assert.Equal(t, DefaultDistance, tol.Distance)
	assert.Equal(t, DefaultAngle, tol.Angle)
	assert.True(t, tol.Valid())
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	SetDefault(Tolerance{Distance: 0.5, Angle: 0.1})
	assert.Equal(t, 0.5, Default().Distance)
	assert.True(t, Default().Equal(1, 1.4))
}

func TestComparisons(t *testing.T) {
	tol := Tolerance{Distance: 0.01, Angle: 0.01}

	assert.True(t, tol.Equal(1, 1.005))
	assert.False(t, tol.Equal(1, 1.02))
	assert.True(t, tol.Zero(-0.009))
	assert.False(t, tol.Zero(0.011))

	assert.True(t, tol.Within(-0.005, 0, 1))
	assert.True(t, tol.Within(1.005, 0, 1))
	assert.False(t, tol.Within(1.02, 0, 1))

	assert.True(t, tol.AngleEqual(0.001, 2*math.Pi-0.001))
	assert.True(t, tol.AngleEqual(math.Pi, math.Pi+0.005))
	assert.False(t, tol.AngleEqual(0, math.Pi))
}

func TestValid(t *testing.T) {
	assert.False(t, Tolerance{Distance: 0, Angle: 1}.Valid())
	assert.False(t, Tolerance{Distance: 1, Angle: -1}.Valid())
	assert.False(t, Tolerance{Distance: math.Inf(1), Angle: 1}.Valid())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("toml", func(t *testing.T) {
		tol, err := Load(write("tol.toml", "distance = 0.001\nangle = 0.02\n"))
		require.NoError(t, err)
		assert.Equal(t, Tolerance{Distance: 0.001, Angle: 0.02}, tol)
	})

	t.Run("yaml keeps missing keys", func(t *testing.T) {
		tol, err := Load(write("tol.yaml", "distance: 0.25\n"))
		require.NoError(t, err)
		assert.Equal(t, 0.25, tol.Distance)
		assert.Equal(t, DefaultAngle, tol.Angle)
	})

	t.Run("rejects non-positive", func(t *testing.T) {
		_, err := Load(write("bad.yml", "distance: -1\n"))
		assert.Error(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(write("tol.json", "{}"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		assert.Error(t, err)
	})
}
