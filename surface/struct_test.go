package surface

import (
	"testing"
	"time"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sharedOptions struct {
	DryRun bool `jsonhelp:"short:d;desc:Run without writing files"`
}

type cliOptions struct {
	Verbose bool   `jsonhelp:"short:v;desc:Verbose output;default:false"`
	LogFile string `jsonhelp:"name:log-file;desc:Write logs to file;hidden:true"`
	Internal string
	Ignored  string `jsonhelp:"-"`
	Shared   sharedOptions

	Build struct {
		Project       string    `jsonhelp:"pos:0;required:true;desc:Project name"`
		Configuration string    `jsonhelp:"short:c;accepted:development|production;default:production"`
		Since         time.Time `jsonhelp:"default:2024-03-01"`
		Assets        []string  `jsonhelp:"default:src/assets,src/favicon.ico"`
		Watch         bool      `jsonhelp:"deprecated:use serve instead"`
	} `jsonhelp:"kind:command;usage:<project>;desc:Builds a project;alias:b"`

	Generate struct {
		Component struct {
			Name string `jsonhelp:"pos:0;required:true"`
		} `jsonhelp:"kind:command;usage:<name>;desc:Creates a component"`
		Style string `jsonhelp:"alias:s;accepted:css|scss"`
	} `jsonhelp:"kind:command;name:generate;alias:g;desc:Generates files;long:Generates files from schematics"`

	Eject struct{} `jsonhelp:"kind:command;hidden:true;deprecated:true"`
}

func TestNewParserFromStruct(t *testing.T) {
	opts := &cliOptions{}
	parser, err := NewParserFromStruct(opts, WithProgramName("ng"))
	require.NoError(t, err)

	assert.True(t, parser.HasCommand("build"))
	assert.True(t, parser.HasCommand("generate", "component"))
	assert.True(t, parser.HasCommand("eject"))

	state, err := parser.Snapshot([]string{"build"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"verbose", "dryRun", "watch"}, state.Booleans)
	assert.ElementsMatch(t, []string{"log-file", "project", "configuration", "since"}, state.Strings)
	assert.Equal(t, []string{"assets"}, state.Arrays)
	assert.Equal(t, []string{"log-file"}, state.Hidden)
	assert.Equal(t, []string{"project"}, state.Positional)
	assert.Equal(t, []string{"d"}, state.Aliases["dryRun"])
	assert.Equal(t, "2024-03-01T00:00:00Z", state.Defaults["since"])
	assert.Equal(t, []string{"src/assets", "src/favicon.ico"}, state.Defaults["assets"])
	assert.Equal(t, []any{"development", "production"}, state.Choices["configuration"])
	assert.Equal(t, jsonhelp.Deprecated("use serve instead"), state.Deprecated["watch"])
	assert.NotContains(t, state.Strings, "internal")
	assert.NotContains(t, state.Strings, "ignored")

	root, err := parser.Snapshot(nil)
	require.NoError(t, err)
	require.Len(t, root.Commands, 2)
	assert.Equal(t, "build <project>", root.Commands[0].Command)
	assert.Equal(t, []string{"b"}, root.Commands[0].Aliases)
	assert.Equal(t, "generate", root.Commands[1].Command)
}

func TestNewParserFromStruct_JSONHelp(t *testing.T) {
	parser, err := NewParserFromStruct(&cliOptions{}, WithProgramName("ng"))
	require.NoError(t, err)

	out, err := parser.JSONHelp([]string{"g", "component"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "component",
		"command": "ng generate component <name>",
		"description": "Creates a component",
		"options": [
			{"name": "dryRun", "type": "boolean", "deprecated": false, "aliases": ["d"], "description": "Run without writing files"},
			{"name": "name", "type": "string", "deprecated": false, "required": true, "positional": 0},
			{"name": "style", "type": "string", "deprecated": false, "aliases": ["s"], "enum": ["css", "scss"]},
			{"name": "verbose", "type": "boolean", "deprecated": false, "aliases": ["v"], "default": false, "description": "Verbose output"}
		]
	}`, out)

	out, err = parser.JSONHelp([]string{"generate"})
	require.NoError(t, err)
	doc := decodeDocument(t, out)
	assert.Equal(t, "Generates files", doc["description"])
	assert.Equal(t, "Generates files from schematics", doc["longDescription"])
}

func TestNewParserFromStruct_NameConverters(t *testing.T) {
	type options struct {
		OutputPath string `jsonhelp:"desc:Output path"`
		RunTests   struct {
			WatchMode bool
		} `jsonhelp:"kind:command"`
	}

	parser, err := NewParserFromStruct(&options{},
		WithProgramName("tool"),
		WithFlagNameConverter(ToKebabCase),
		WithCommandNameConverter(ToSnakeCase))
	require.NoError(t, err)

	assert.True(t, parser.HasCommand("run_tests"))
	_, ok := parser.GetFlag("output-path")
	assert.True(t, ok)
	_, ok = parser.GetFlag("watch-mode", "run_tests")
	assert.False(t, ok, "untagged fields are not flags")
}

func TestNewParserFromStruct_Errors(t *testing.T) {
	var nilOpts *cliOptions
	_, err := NewParserFromStruct(nilOpts)
	assert.ErrorIs(t, err, errs.ErrNilPointer)

	notAStruct := "options"
	_, err = NewParserFromStruct(&notAStruct)
	assert.ErrorIs(t, err, errs.ErrOnlyStructsCanBeTagged)

	type badTag struct {
		Port int `jsonhelp:"secure:true"`
	}
	_, err = NewParserFromStruct(&badTag{})
	assert.ErrorIs(t, err, errs.ErrProcessingField)
	assert.ErrorIs(t, err, errs.ErrUnrecognizedTagKey)

	type badDefault struct {
		Port int `jsonhelp:"default:http"`
	}
	_, err = NewParserFromStruct(&badDefault{})
	assert.ErrorIs(t, err, errs.ErrInvalidDefault)

	type unsupported struct {
		Handler func() `jsonhelp:"desc:callback"`
	}
	_, err = NewParserFromStruct(&unsupported{})
	assert.ErrorIs(t, err, errs.ErrMissingOptionType)

	type deep struct {
		A struct {
			B struct {
				C struct{} `jsonhelp:"kind:command"`
			} `jsonhelp:"kind:command"`
		} `jsonhelp:"kind:command"`
	}
	_, err = NewParserFromStruct(&deep{}, WithMaxDepth(1))
	assert.ErrorIs(t, err, errs.ErrRecursionDepthExceeded)
}
