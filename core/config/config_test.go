package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/josephlewis42/structsh/core/signature"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, `structsh:\w> `, cfg.Prompt)
	assert.Empty(t, cfg.HistoryPath())

	for _, cmd := range cfg.Commands {
		_, err := cmd.ToSignature()
		assert.NoError(t, err, cmd.Name)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Configuration)
		field  string
	}{
		"missing prompt":   {func(c *Configuration) { c.Prompt = "" }, "prompt"},
		"negative history": {func(c *Configuration) { c.HistoryLimit = -1 }, "history_limit"},
		"negative rate":    {func(c *Configuration) { c.Viewer.MaxBytesPerSecond = -5 }, "max_bytes_per_second"},
		"duplicate command": {func(c *Configuration) {
			c.Commands = append(c.Commands, c.Commands[0])
		}, "commands"},
		"bad kind": {func(c *Configuration) {
			c.Commands = []CommandSpec{{Name: "x", Named: []NamedSpec{{Key: "a", Kind: "sometimes"}}}}
		}, "kind"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestCommandSpec_ToSignature(t *testing.T) {
	spec := CommandSpec{
		Name:  "copy",
		Short: "Copy things.",
		Positional: []PositionalSpec{
			{Name: "src", Kind: "value"},
			{Name: "filter", Kind: "block"},
			{Name: "dest", Kind: "value", Optional: true},
		},
		Rest: true,
		Named: []NamedSpec{
			{Key: "force", Kind: "switch"},
			{Key: "range", Kind: "mandatory", Shape: "tuple"},
			{Key: "depth", Kind: "optional"},
		},
	}

	expected := signature.New("copy").
		Describe("Copy things.").
		Required(signature.Value("src")).
		Required(signature.Block("filter")).
		Optional(signature.Value("dest")).
		Rest().
		Switch("force").
		Named("range", signature.Mandatory, signature.Tuple).
		Named("depth", signature.Optional, signature.Single).
		MustBuild()

	actual, err := spec.ToSignature()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestCommandSpec_ToSignature_errors(t *testing.T) {
	cases := map[string]struct {
		spec CommandSpec
		err  string
	}{
		"mandatory after optional": {
			CommandSpec{Name: "x", Positional: []PositionalSpec{
				{Name: "a", Kind: "value", Optional: true},
				{Name: "b", Kind: "value"},
			}},
			`x: mandatory positional "b" follows an optional one`,
		},
		"unknown positional kind": {
			CommandSpec{Name: "x", Positional: []PositionalSpec{{Name: "a", Kind: "list"}}},
			`x: unknown positional kind "list"`,
		},
		"unknown shape": {
			CommandSpec{Name: "x", Named: []NamedSpec{{Key: "a", Kind: "optional", Shape: "map"}}},
			`x: unknown shape "map"`,
		},
		"duplicate key": {
			CommandSpec{Name: "x", Named: []NamedSpec{{Key: "a", Kind: "switch"}, {Key: "a", Kind: "switch"}}},
			`x: named argument "a" declared twice`,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := tc.spec.ToSignature()
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestLoadFs(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadFs(fs)
	assert.Error(t, err, "missing config")

	require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte("prompt: '> '\nunknown: 1\n"), 0600))
	_, err = LoadFs(fs)
	assert.Error(t, err, "unknown fields are rejected")

	require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte("prompt: '> '\nhistory_limit: 3\n"), 0600))
	cfg, err := LoadFs(fs)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 3, cfg.HistoryLimit)

	w, err := cfg.OpenAppLog()
	require.NoError(t, err)
	_, err = w.Write([]byte("{}\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	contents, err := afero.ReadFile(fs, AppLogName)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(contents))
}
