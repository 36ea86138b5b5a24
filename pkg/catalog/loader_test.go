package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harun/toolshed/pkg/inventory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "tools.json", expected: FormatJSON},
		{path: "/tmp/Tools.JSON", expected: FormatJSON},
		{path: "tools.yaml", expected: FormatYAML},
		{path: "tools.yml", expected: FormatYAML},
		{path: "tools.toml", wantErr: true},
		{path: "tools", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestLoader_Parse(t *testing.T) {
	loader := NewLoader(zerolog.Nop())

	t.Run("json", func(t *testing.T) {
		data := []byte(`{"tools": [
			{"name": "Hammer", "quantity": 35, "reservations": []},
			{"name": "Axe", "quantity": 18}
		]}`)

		cat, err := loader.Parse(data, FormatJSON)
		require.NoError(t, err)
		require.Len(t, cat.Tools, 2)
		assert.Equal(t, "Hammer", cat.Tools[0].Name)
		assert.Equal(t, 35, cat.Tools[0].Quantity)
		assert.Equal(t, "Axe", cat.Tools[1].Name)
		assert.NotNil(t, cat.Tools[1].Reservations)
	})

	t.Run("yaml", func(t *testing.T) {
		data := []byte(`
tools:
  - name: Hammer
    quantity: 35
    reservations:
      - id: r-1
        borrower: sam
        created_at: "2026-01-02T03:04:05Z"
  - name: Axe
    quantity: 18
`)

		cat, err := loader.Parse(data, FormatYAML)
		require.NoError(t, err)
		require.Len(t, cat.Tools, 2)
		require.Len(t, cat.Tools[0].Reservations, 1)
		assert.Equal(t, "sam", cat.Tools[0].Reservations[0].Borrower)
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), cat.Tools[0].Reservations[0].CreatedAt.UTC())
	})

	t.Run("negative quantity accepted", func(t *testing.T) {
		cat, err := loader.Parse([]byte(`{"tools": [{"name": "Saw", "quantity": -2}]}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, -2, cat.Tools[0].Quantity)
	})

	t.Run("empty tool list", func(t *testing.T) {
		cat, err := loader.Parse([]byte(`{"tools": []}`), FormatJSON)
		require.NoError(t, err)
		assert.Empty(t, cat.Tools)
		assert.Equal(t, "Tool List:", cat.Library().List())
	})
}

func TestLoader_Parse_SchemaViolations(t *testing.T) {
	loader := NewLoader(zerolog.Nop())

	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "missing tools", data: `{}`, format: FormatJSON},
		{name: "missing name", data: `{"tools": [{"quantity": 1}]}`, format: FormatJSON},
		{name: "fractional quantity", data: `{"tools": [{"name": "Saw", "quantity": 1.5}]}`, format: FormatJSON},
		{name: "string quantity", data: "tools:\n  - name: Saw\n    quantity: lots\n", format: FormatYAML},
		{name: "unknown field", data: `{"tools": [{"name": "Saw", "quantity": 1, "color": "red"}]}`, format: FormatJSON},
		{name: "empty yaml", data: "", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.data), tt.format)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.NotEmpty(t, verr.Errors)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := loader.Parse([]byte(`{"tools": [`), FormatJSON)
		assert.Error(t, err)
	})
}

func TestLoader_SaveLoad(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "tools"+ext)
			tools := Sample()
			tools[1].Reservations = []inventory.Reservation{
				{ID: "r-1", Borrower: "sam", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
			}

			require.NoError(t, Save(path, tools))

			_, err := os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))

			cat, err := Load(path)
			require.NoError(t, err)
			require.Len(t, cat.Tools, 2)
			assert.Equal(t, "Hammer", cat.Tools[0].Name)
			assert.Equal(t, 35, cat.Tools[0].Quantity)
			assert.Equal(t, "Axe", cat.Tools[1].Name)
			require.Len(t, cat.Tools[1].Reservations, 1)
			assert.Equal(t, "r-1", cat.Tools[1].Reservations[0].ID)
			assert.True(t, tools[1].Reservations[0].CreatedAt.Equal(cat.Tools[1].Reservations[0].CreatedAt))

			assert.Equal(t, inventory.NewToolLibrary(Sample()).List(), cat.Library().List())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("tools.txt")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestSample(t *testing.T) {
	first := Sample()
	second := Sample()

	require.Len(t, first, 2)
	assert.Equal(t, "Hammer", first[0].Name)
	assert.Equal(t, 35, first[0].Quantity)
	assert.Equal(t, "Axe", first[1].Name)
	assert.Equal(t, 18, first[1].Quantity)

	first[0].Quantity = 0
	assert.Equal(t, 35, second[0].Quantity)
	assert.Equal(t, 35, Sample()[0].Quantity)
}
