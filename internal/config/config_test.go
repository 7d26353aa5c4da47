package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/memento-mori/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewStore(filepath.Join(t.TempDir(), FileName), logger)
}

func strPtr(s string) *string {
	return &s
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "#BB443E", cfg.Color)
	assert.Nil(t, cfg.Birthdate)
	assert.False(t, cfg.HasBirthdate())
}

func TestHasBirthdate(t *testing.T) {
	assert.False(t, Config{}.HasBirthdate())
	assert.False(t, Config{Birthdate: strPtr("")}.HasBirthdate())
	assert.True(t, Config{Birthdate: strPtr("01/18/1998")}.HasBirthdate())
}

func TestWithBirthdateCopies(t *testing.T) {
	original := DefaultConfig().WithBirthdate("01/18/1998")
	updated := original.WithBirthdate("02/02/2002")

	assert.Equal(t, "01/18/1998", *original.Birthdate)
	assert.Equal(t, "02/02/2002", *updated.Birthdate)
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, DefaultConfig(), store.Load())
}

func TestLoad_InvalidJSON(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path, []byte("{not json"), 0644))

	assert.Equal(t, DefaultConfig(), store.Load())
}

func TestLoad_Directory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewStore(t.TempDir(), logger)

	assert.Equal(t, DefaultConfig(), store.Load())
}

func TestLoad_FromFile(t *testing.T) {
	store := newTestStore(t)
	content := `{
  "color": "red",
  "birthdate": "01/18/1998"
}`
	require.NoError(t, os.WriteFile(store.Path, []byte(content), 0644))

	cfg := store.Load()

	assert.Equal(t, "red", cfg.Color)
	require.NotNil(t, cfg.Birthdate)
	assert.Equal(t, "01/18/1998", *cfg.Birthdate)
}

func TestLoad_FillsMissingColor(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path, []byte(`{"birthdate": "1998-01-18T05:00:00.000Z"}`), 0644))

	cfg := store.Load()

	assert.Equal(t, DefaultColor, cfg.Color)
	require.NotNil(t, cfg.Birthdate)
	assert.Equal(t, "1998-01-18T05:00:00.000Z", *cfg.Birthdate)
}

func TestLoad_KeepsValidFieldsOnTypeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantColor     string
		wantBirthdate *string
	}{
		{
			name:          "numeric birthdate",
			content:       `{"color": "red", "birthdate": 19980118}`,
			wantColor:     "red",
			wantBirthdate: nil,
		},
		{
			name:          "numeric color",
			content:       `{"color": 5, "birthdate": "01/18/1998"}`,
			wantColor:     DefaultColor,
			wantBirthdate: strPtr("01/18/1998"),
		},
		{
			name:          "null birthdate",
			content:       `{"color": "blue", "birthdate": null}`,
			wantColor:     "blue",
			wantBirthdate: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path, []byte(tt.content), 0644))

			cfg := store.Load()

			assert.Equal(t, tt.wantColor, cfg.Color)
			assert.Equal(t, tt.wantBirthdate, cfg.Birthdate)
		})
	}
}

func TestLoad_NonObject(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path, []byte(`["red"]`), 0644))

	assert.Equal(t, DefaultConfig(), store.Load())
}

func TestSave_PreservesUnknownKeys(t *testing.T) {
	store := newTestStore(t)
	content := `{"theme": {"dark": true}, "color": "red", "notes": "a<b", "birthdate": "01/18/1998"}`
	require.NoError(t, os.WriteFile(store.Path, []byte(content), 0644))

	require.NoError(t, store.Save(store.Load()))

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	want := `{
  "color": "red",
  "birthdate": "01/18/1998",
  "notes": "a<b",
  "theme": {
    "dark": true
  }
}`
	assert.Equal(t, want, string(data))
}

func TestMarshal_DoesNotEscapeHTML(t *testing.T) {
	data, err := Marshal(Config{Color: "red", Birthdate: strPtr("<01/18/1998 & more>")})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"color\": \"red\",\n  \"birthdate\": \"<01/18/1998 & more>\"\n}", string(data))
	assert.NotContains(t, string(data), `\u003c`)
}

func TestSave_Format(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(DefaultConfig()))

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"color\": \"#BB443E\",\n  \"birthdate\": null\n}", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(DefaultConfig().WithBirthdate("01/01/1990")))
	require.NoError(t, store.Save(Config{Color: "blue", Birthdate: strPtr("02/02/2002")}))

	cfg := store.Load()
	assert.Equal(t, "blue", cfg.Color)
	assert.Equal(t, "02/02/2002", *cfg.Birthdate)
}

func TestSave_WriteFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewStore(filepath.Join(t.TempDir(), "missing", FileName), logger)

	err := store.Save(DefaultConfig())

	require.Error(t, err)
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "write", cfgErr.Op)
	assert.Equal(t, store.Path, cfgErr.Path)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"defaults", DefaultConfig()},
		{"named color", Config{Color: "cyan", Birthdate: strPtr("01/18/1998")}},
		{"short hex", Config{Color: "#abc", Birthdate: strPtr("1.2.2003")}},
		{"extra keys", Config{
			Color:     "red",
			Birthdate: strPtr("01/18/1998"),
			Extra:     map[string]json.RawMessage{"notes": json.RawMessage(`"hi"`), "count": json.RawMessage(`3`)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			require.NoError(t, store.Save(tt.cfg))
			assert.Equal(t, tt.cfg, store.Load())
		})
	}
}

func TestNewStore_NilLogger(t *testing.T) {
	store := NewStore("config.json", nil)
	assert.NotNil(t, store.logger)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)

	assert.Equal(t, FileName, filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))
}
