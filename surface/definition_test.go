package surface

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const ngDefinitionJSON = `{
  "program": "ng",
  "description": "Angular CLI",
  "flags": {
    "verbose": {"type": "boolean", "short": "v", "default": false, "description": "Verbose output"},
    "help": {"type": "boolean", "description": "Shows help"}
  },
  "commands": {
    "build": {
      "usage": "<name>",
      "description": "Builds a project",
      "aliases": ["b"],
      "flags": {
        "name": {"position": 0, "required": true, "description": "Project name"},
        "budget": {"type": "number", "default": 2.5, "hidden": true},
        "assets": {"type": "array", "default": ["a.png", "b.png"]}
      }
    },
    "generate": {
      "usage": "<schematic>",
      "aliases": ["g"],
      "description": "Generates files",
      "commands": {
        "component": {"usage": "<name>", "description": "Creates a component"},
        "class": {"usage": "<name>", "description": "Creates a class", "deprecated": "use component"}
      }
    }
  }
}`

const ngDefinitionYAML = `program: ng
description: Angular CLI
flags:
  verbose:
    type: boolean
    short: v
    default: false
    description: Verbose output
  help:
    type: boolean
    description: Shows help
commands:
  build:
    usage: <name>
    description: Builds a project
    aliases: [b]
    flags:
      name:
        position: 0
        required: true
        description: Project name
      budget:
        type: number
        default: 2.5
        hidden: true
      assets:
        type: array
        default: [a.png, b.png]
  generate:
    usage: <schematic>
    aliases: [g]
    description: Generates files
    commands:
      component:
        usage: <name>
        description: Creates a component
      class:
        usage: <name>
        description: Creates a class
        deprecated: use component
`

func TestFromDefinition(t *testing.T) {
	decoders := map[string]func(t *testing.T) *Definition{
		"json": func(t *testing.T) *Definition {
			var def Definition
			require.NoError(t, json.Unmarshal([]byte(ngDefinitionJSON), &def))
			return &def
		},
		"yaml": func(t *testing.T) *Definition {
			var def Definition
			require.NoError(t, yaml.Unmarshal([]byte(ngDefinitionYAML), &def))
			return &def
		},
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			def := decode(t)
			require.Equal(t, 2, def.Commands.Len())
			assert.Equal(t, "build", def.Commands.Oldest().Key)

			parser, err := FromDefinition(def)
			require.NoError(t, err)
			assert.Equal(t, "ng", parser.ProgramName())

			state, err := parser.Snapshot([]string{"build"})
			require.NoError(t, err)
			assert.Equal(t, []string{"name"}, state.Positional)
			assert.Equal(t, 2.5, state.Defaults["budget"])
			assert.Equal(t, []string{"a.png", "b.png"}, state.Defaults["assets"])
			assert.Equal(t, false, state.Defaults["verbose"])
			assert.Equal(t, []string{"budget"}, state.Hidden)

			root, err := parser.Snapshot(nil)
			require.NoError(t, err)
			require.Len(t, root.Commands, 2)
			assert.Equal(t, "build <name>", root.Commands[0].Command)
			assert.Equal(t, "generate <schematic>", root.Commands[1].Command)

			gen, err := parser.Snapshot([]string{"generate"})
			require.NoError(t, err)
			require.Len(t, gen.Commands, 2)
			assert.Equal(t, "component <name>", gen.Commands[0].Command)
			assert.Equal(t, jsonhelp.Deprecated("use component"), gen.Commands[1].Deprecated)
		})
	}
}

func TestFromDefinition_JSONHelp(t *testing.T) {
	var def Definition
	require.NoError(t, json.Unmarshal([]byte(ngDefinitionJSON), &def))

	parser, err := FromDefinition(&def)
	require.NoError(t, err)

	out, err := parser.JSONHelp([]string{"build", "app"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "build",
		"command": "ng build <name>",
		"description": "Builds a project",
		"options": [
			{"name": "assets", "type": "array", "deprecated": false, "default": ["a.png", "b.png"]},
			{"name": "help", "type": "boolean", "deprecated": false, "description": "Shows help"},
			{"name": "name", "type": "string", "deprecated": false, "required": true, "description": "Project name", "positional": 0},
			{"name": "verbose", "type": "boolean", "deprecated": false, "aliases": ["v"], "default": false, "description": "Verbose output"}
		]
	}`, out)
}

func TestFromDefinition_Errors(t *testing.T) {
	_, err := FromDefinition(nil)
	assert.ErrorIs(t, err, errs.ErrNilPointer)

	var def Definition
	require.NoError(t, json.Unmarshal([]byte(`{"program":"x","flags":{"size":{"type":"matrix"}}}`), &def))
	_, err = FromDefinition(&def)
	assert.ErrorIs(t, err, errs.ErrMissingOptionType)

	var badDefault Definition
	require.NoError(t, json.Unmarshal([]byte(`{"program":"x","flags":{"port":{"type":"number","default":"http"}}}`), &badDefault))
	_, err = FromDefinition(&badDefault)
	assert.ErrorIs(t, err, errs.ErrInvalidDefault)
}

func TestDeprecationValue_YAML(t *testing.T) {
	tests := []struct {
		input string
		want  jsonhelp.Deprecation
	}{
		{input: "deprecated: false", want: jsonhelp.NotDeprecated},
		{input: "deprecated: true", want: jsonhelp.Deprecated("")},
		{input: "deprecated: ~", want: jsonhelp.NotDeprecated},
		{input: "deprecated: use --style", want: jsonhelp.Deprecated("use --style")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var fd FlagDefinition
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &fd))
			assert.Equal(t, tt.want, fd.Deprecated.Deprecation)
		})
	}

	var fd FlagDefinition
	err := yaml.Unmarshal([]byte("deprecated: [a]"), &fd)
	assert.ErrorIs(t, err, errs.ErrInvalidDeprecation)

	out, err := yaml.Marshal(FlagDefinition{Type: "string", Deprecated: DeprecationValue{jsonhelp.Deprecated("gone")}})
	require.NoError(t, err)
	assert.Equal(t, "type: string\ndeprecated: gone\n", string(out))

	out, err = yaml.Marshal(FlagDefinition{Type: "string"})
	require.NoError(t, err)
	assert.Equal(t, "type: string\n", string(out))
}

func snapshotDefaults(t *testing.T, def *Definition) map[string]any {
	t.Helper()
	parser, err := FromDefinition(def)
	require.NoError(t, err)
	state, err := parser.Snapshot(nil)
	require.NoError(t, err)

	return state.Defaults
}

func TestFromDefinition_ListDefaultKeepsElements(t *testing.T) {
	var def Definition
	require.NoError(t, json.Unmarshal([]byte(`{
		"program": "ng",
		"flags": {
			"projects": {"type": "array", "default": ["my app", "lib|core"]},
			"none": {"type": "array", "default": []},
			"tags": {"type": "string", "default": ["a", "b"]}
		}
	}`), &def))

	defaults := snapshotDefaults(t, &def)
	assert.Equal(t, []string{"my app", "lib|core"}, defaults["projects"])
	assert.NotContains(t, defaults, "none")
	assert.Equal(t, "a,b", defaults["tags"])

	parser, err := FromDefinition(&def)
	require.NoError(t, err)
	out, err := parser.JSONHelp(nil)
	require.NoError(t, err)
	assert.Contains(t, out, `"default": [
        "my app",
        "lib|core"
      ]`)
}

func TestFromDefinition_YAMLDateDefault(t *testing.T) {
	var def Definition
	require.NoError(t, yaml.Unmarshal([]byte(`program: ng
flags:
  since:
    type: string
    default: 2024-01-02
  until:
    type: string
    time: true
    default: 2024-01-02
`), &def))

	defaults := snapshotDefaults(t, &def)
	assert.Equal(t, "2024-01-02", defaults["since"])
	assert.Equal(t, "2024-01-02T00:00:00Z", defaults["until"])
}

func TestDefaultString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "dist", want: "dist"},
		{name: "number", in: float64(4200), want: "4200"},
		{name: "bool", in: true, want: "true"},
		{name: "time", in: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: "2024-01-02T03:04:05Z"},
		{name: "list", in: []any{"a", float64(1)}, want: "a,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultString(tt.in))
		})
	}
}

func TestDefinition_UnknownNestedKeys(t *testing.T) {
	jsonInputs := []string{
		`{"program":"ng","flags":{"port":{"type":"number","descripton":"Port"}}}`,
		`{"program":"ng","commands":{"serve":{"usgae":"<dir>"}}}`,
		`{"program":"ng","commands":{"serve":{"flags":{"port":{"shrot":"p"}}}}}`,
	}
	for _, input := range jsonInputs {
		var def Definition
		assert.Error(t, json.Unmarshal([]byte(input), &def), input)
	}

	yamlInputs := []string{
		"program: ng\nflags:\n  port:\n    type: number\n    descripton: Port\n",
		"program: ng\ncommands:\n  serve:\n    usgae: <dir>\n",
		"program: ng\ncommands:\n  serve:\n    flags:\n      port:\n        shrot: p\n",
	}
	for _, input := range yamlInputs {
		var def Definition
		assert.Error(t, yaml.Unmarshal([]byte(input), &def), input)
	}

	var fd FlagDefinition
	err := json.Unmarshal([]byte(`{"type":"number","descripton":"Port"}`), &fd)
	assert.ErrorContains(t, err, "descripton")
	err = yaml.Unmarshal([]byte("type: number\ndescripton: Port\n"), &fd)
	assert.ErrorContains(t, err, "descripton")
}
