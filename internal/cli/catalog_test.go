package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harun/toolshed/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportExport(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "seed")
	require.NoError(t, err)

	exported := filepath.Join(env.dir, "out", "tools.yaml")
	out, err := env.run(t, "", "export", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 tools")

	cat, err := catalog.Load(exported)
	require.NoError(t, err)
	require.Len(t, cat.Tools, 2)
	assert.Equal(t, "Hammer", cat.Tools[0].Name)

	t.Run("import replaces stored tools", func(t *testing.T) {
		path := filepath.Join(env.dir, "new.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tools": [{"name": "Axe", "quantity": 18}, {"name": "Hammer", "quantity": 35}]}`), 0644))

		out, err := env.run(t, "", "import", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Imported 2 tools")

		out, err = env.run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "Tool List:"+
			"\nTool: Axe\nQuantity: 18\nReserve Now!\n        Donate Tool!\n---"+
			"\nTool: Hammer\nQuantity: 35\nReserve Now!\n        Donate Tool!\n---\n", out)
	})

	t.Run("invalid catalog leaves tools alone", func(t *testing.T) {
		path := filepath.Join(env.dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tools": [{"quantity": 1}]}`), 0644))

		_, err := env.run(t, "", "import", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation")

		out, err := env.run(t, "", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Tool: Axe")
	})

	t.Run("no file and no configured catalog", func(t *testing.T) {
		_, err := env.run(t, "", "export")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.path")
	})
}

func TestImportConfiguredCatalog(t *testing.T) {
	env := newTestEnv(t)
	catalogPath := filepath.Join(env.dir, "tools.json")
	cfg := `{
		"data_dir": "` + filepath.ToSlash(env.dir) + `",
		"catalog": {"path": "` + filepath.ToSlash(catalogPath) + `"}
	}`
	require.NoError(t, os.WriteFile(env.configPath, []byte(cfg), 0644))
	require.NoError(t, catalog.Save(catalogPath, catalog.Sample()))

	out, err := env.run(t, "", "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 tools from "+catalogPath)

	out, err = env.run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, seededListing, out)
}
