package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "extenum_gen.go", cfg.Output)
	assert.Equal(t, []string{"extenum"}, cfg.Tags)
	assert.Empty(t, cfg.Unknown)

	// The defaults expand the same way as plan.DefaultOptions.
	assert.Equal(t, plan.DefaultOptions(), cfg.Options(analyze.DirectiveOptions{}))
}

func TestFind(t *testing.T) {
	cfg, path, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	dir := writeConfig(t, `
output = "enums_gen.go"
tags = ["enumdecl"]
unknown = "Other(raw:)"
hashable = false
marshal = false
`)

	cfg, path, err = Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	assert.Equal(t, "enums_gen.go", cfg.Output)
	assert.Equal(t, []string{"enumdecl"}, cfg.Tags)
	assert.Equal(t, "Other(raw:)", cfg.Unknown)
	assert.False(t, cfg.Hashable)
	assert.False(t, cfg.Marshal)
	// Keys absent from the file keep their defaults.
	assert.True(t, cfg.KnownCases)
	assert.True(t, cfg.Comments)
	assert.Equal(t, Default().HashableNames, cfg.HashableNames)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown key", content: "colour = true\n", want: "unknown keys: colour"},
		{name: "syntax", content: "output = \n", want: FileName + ":1:"},
		{name: "wrong type", content: "marshal = \"yes\"\n", want: FileName},
		{name: "output path", content: "output = \"gen/x.go\"\n", want: "output must be a file name"},
		{name: "output ext", content: "output = \"x.txt\"\n", want: "output must end in .go"},
		{name: "no tags", content: "tags = []\n", want: "at least one build tag"},
		{name: "bad pattern", content: "unknown = \"(x:)\"\n", want: "unknown:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filepath.Join(writeConfig(t, tt.content), FileName))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestOptions(t *testing.T) {
	yes, no := true, false

	cfg := Default()
	cfg.Unknown = "Other(raw:)"

	opts := cfg.Options(analyze.DirectiveOptions{})
	assert.Equal(t, "Other(raw:)", opts.CatchAll)
	assert.False(t, opts.SkipHashable)

	opts = cfg.Options(analyze.DirectiveOptions{
		Unknown:    "Unrecognized(_:)",
		Hashable:   &no,
		Marshal:    &no,
		KnownCases: &no,
	})
	assert.Equal(t, "Unrecognized(_:)", opts.CatchAll)
	assert.True(t, opts.SkipHashable)
	assert.False(t, opts.Marshal)
	assert.False(t, opts.KnownCasesList)

	cfg.Hashable = false
	cfg.Marshal = false
	opts = cfg.Options(analyze.DirectiveOptions{Hashable: &yes, Marshal: &yes})
	assert.False(t, opts.SkipHashable)
	assert.True(t, opts.Marshal)
}

func TestEncode(t *testing.T) {
	data, err := Default().Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "output = 'extenum_gen.go'")

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
