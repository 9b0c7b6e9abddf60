package surface

import (
	"testing"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/types"
	"github.com/stretchr/testify/assert"
)

func TestNewFlag(t *testing.T) {
	assert.Equal(t, &Flag{TypeOf: types.String}, NewFlag())

	flag := NewFlag(
		WithShortFlag("o"),
		WithAliases("out"),
		WithAliases("dest"),
		WithDescription("Output directory"),
		WithType(types.Array),
		SetRequired(true),
		SetHidden(true),
		WithDefaultValue("dist"),
		WithAcceptedValues("dist", "build"),
		WithDeprecated("use --output-path"),
		WithPosition(1),
		SetTimeValued(false),
	)

	pos := 1
	assert.Equal(t, &Flag{
		Description:    "Output directory",
		TypeOf:         types.Array,
		Required:       true,
		Hidden:         true,
		Short:          "o",
		Aliases:        []string{"out", "dest"},
		DefaultValue:   "dist",
		AcceptedValues: []string{"dist", "build"},
		Deprecated:     jsonhelp.Deprecated("use --output-path"),
		Position:       &pos,
	}, flag)

	flag.Set(SetRequired(false), SetTimeValued(true))
	assert.False(t, flag.Required)
	assert.True(t, flag.TimeValued)
}

func TestWithDefaultValues(t *testing.T) {
	flag := NewFlag(WithType(types.Array), WithDefaultValue("ignored"), WithDefaultValues("my app", "lib|core"))
	assert.Equal(t, []string{"my app", "lib|core"}, flag.DefaultList)

	parser, err := NewParserWith(WithProgramName("ng"), WithFlag("projects", flag))
	assert.NoError(t, err)
	state, err := parser.Snapshot(nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"my app", "lib|core"}, state.Defaults["projects"])
}
