package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seededListing = "Tool List:" +
	"\nTool: Hammer\nQuantity: 35\nReserve Now!\n        Donate Tool!\n---" +
	"\nTool: Axe\nQuantity: 18\nReserve Now!\n        Donate Tool!\n---\n"

func TestListCommand(t *testing.T) {
	t.Run("empty database", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "Tool List:\n", out)
	})

	t.Run("after seed", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.run(t, "", "seed")
		require.NoError(t, err)
		assert.Equal(t, "Seeded 2 tools\n", out)

		out, err = env.run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, seededListing, out)

		// Seeding again replaces rather than duplicates.
		_, err = env.run(t, "", "seed")
		require.NoError(t, err)
		out, err = env.run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, seededListing, out)
	})

	t.Run("from catalog file", func(t *testing.T) {
		env := newTestEnv(t)
		path := filepath.Join(env.dir, "tools.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tools:\n  - name: Saw\n    quantity: 4\n"), 0644))

		out, err := env.run(t, "", "list", "--catalog", path)
		require.NoError(t, err)
		assert.Equal(t, "Tool List:\nTool: Saw\nQuantity: 4\nReserve Now!\n        Donate Tool!\n---\n", out)

		_, err = os.Stat(filepath.Join(env.dir, "toolshed.db"))
		assert.True(t, os.IsNotExist(err), "listing a catalog must not create the database")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.run(t, "", "list", "extra")
		assert.Error(t, err)
	})
}

func TestAddShowRemove(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "add", "Drill", "3")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = env.run(t, "", "show", id)
	require.NoError(t, err)
	assert.Equal(t, "Tool: Drill\nQuantity: 3\n", out)

	t.Run("negative quantity", func(t *testing.T) {
		out, err := env.run(t, "", "add", "--", "Ladder", "-1")
		require.NoError(t, err)

		out, err = env.run(t, "", "show", strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "Tool: Ladder\nQuantity: -1\n", out)
	})

	t.Run("bad quantity", func(t *testing.T) {
		_, err := env.run(t, "", "add", "Drill", "three")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("remove", func(t *testing.T) {
		out, err := env.run(t, "", "remove", id)
		require.NoError(t, err)
		assert.Contains(t, out, "Removed "+id)

		_, err = env.run(t, "", "show", id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tool with id")

		_, err = env.run(t, "", "rm", id)
		assert.Error(t, err)
	})
}
