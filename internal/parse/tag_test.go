package parse

import (
	"reflect"
	"testing"
	"time"

	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func TestInferFieldType(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected types.OptionType
	}{
		{name: "bool", input: reflect.TypeOf(false), expected: types.Boolean},
		{name: "pointer to bool", input: reflect.TypeOf(new(bool)), expected: types.Boolean},
		{name: "string slice", input: reflect.TypeOf([]string{}), expected: types.Array},
		{name: "int slice", input: reflect.TypeOf([]int{}), expected: types.Array},
		{name: "struct slice", input: reflect.TypeOf([]struct{}{}), expected: types.Empty},
		{name: "int", input: reflect.TypeOf(0), expected: types.Number},
		{name: "float", input: reflect.TypeOf(0.5), expected: types.Number},
		{name: "uint8", input: reflect.TypeOf(uint8(1)), expected: types.Number},
		{name: "string", input: reflect.TypeOf(""), expected: types.String},
		{name: "duration", input: reflect.TypeOf(time.Duration(0)), expected: types.String},
		{name: "time", input: reflect.TypeOf(time.Time{}), expected: types.String},
		{
			name:     "struct field",
			input:    reflect.StructField{Name: "Port", Type: reflect.TypeOf(0)},
			expected: types.Number,
		},
		{name: "nil", input: nil, expected: types.Empty},
		{name: "unsupported", input: reflect.TypeOf(struct{}{}), expected: types.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferFieldType(tt.input))
		})
	}
}

func TestIsTimeField(t *testing.T) {
	assert.True(t, IsTimeField(reflect.StructField{Name: "Since", Type: reflect.TypeOf(&time.Time{})}))
	assert.False(t, IsTimeField(reflect.StructField{Name: "Name", Type: reflect.TypeOf("")}))
}

func TestUnmarshalTagFormat(t *testing.T) {
	stringField := reflect.StructField{Name: "Project", Type: reflect.TypeOf("")}
	boolField := reflect.StructField{Name: "Verbose", Type: reflect.TypeOf(false)}
	structField := reflect.StructField{Name: "Build", Type: reflect.TypeOf(struct{}{})}

	tests := []struct {
		name    string
		tag     string
		field   reflect.StructField
		want    *types.TagConfig
		wantErr error
	}{
		{
			name:  "inferred flag",
			tag:   "name:project;desc:Project name;required:true;pos:0",
			field: stringField,
			want: &types.TagConfig{
				Kind:        types.KindFlag,
				Name:        "project",
				TypeOf:      types.String,
				Description: "Project name",
				Required:    true,
				Position:    intPtr(0),
			},
		},
		{
			name:  "aliases and default",
			tag:   "short:v;alias:verbose-mode|loud;default:false;desc:Verbose output",
			field: boolField,
			want: &types.TagConfig{
				Kind:        types.KindFlag,
				Short:       "v",
				Aliases:     []string{"verbose-mode", "loud"},
				TypeOf:      types.Boolean,
				Default:     "false",
				Description: "Verbose output",
			},
		},
		{
			name:  "explicit type and accepted values",
			tag:   "type:array;accepted:css|scss| less ;hidden:true",
			field: stringField,
			want: &types.TagConfig{
				Kind:           types.KindFlag,
				TypeOf:         types.Array,
				AcceptedValues: []string{"css", "scss", "less"},
				Hidden:         true,
			},
		},
		{
			name:  "deprecated with message",
			tag:   "deprecated:use --style instead",
			field: stringField,
			want: &types.TagConfig{
				Kind:          types.KindFlag,
				TypeOf:        types.String,
				Deprecated:    true,
				DeprecatedMsg: "use --style instead",
			},
		},
		{
			name:  "deprecated flag",
			tag:   "deprecated:true",
			field: stringField,
			want:  &types.TagConfig{Kind: types.KindFlag, TypeOf: types.String, Deprecated: true},
		},
		{
			name:  "command",
			tag:   "kind:command;name:build;usage:<name>;desc:Build a project;long:Compiles the project",
			field: structField,
			want: &types.TagConfig{
				Kind:            types.KindCommand,
				Name:            "build",
				Usage:           "<name>",
				Description:     "Build a project",
				LongDescription: "Compiles the project",
			},
		},
		{
			name:  "value containing colons",
			tag:   "desc:format: one of a|b;",
			field: stringField,
			want:  &types.TagConfig{Kind: types.KindFlag, TypeOf: types.String, Description: "format: one of a|b"},
		},
		{name: "missing separator", tag: "name", field: stringField, wantErr: errs.ErrInvalidTagFormat},
		{name: "invalid kind", tag: "kind:option", field: stringField, wantErr: errs.ErrInvalidKind},
		{name: "unknown key", tag: "secure:true", field: stringField, wantErr: errs.ErrUnrecognizedTagKey},
		{name: "invalid required", tag: "required:maybe", field: stringField, wantErr: errs.ErrInvalidTagValue},
		{name: "invalid type", tag: "type:matrix", field: stringField, wantErr: errs.ErrInvalidTagValue},
		{name: "negative position", tag: "pos:-1", field: stringField, wantErr: errs.ErrNegativePosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalTagFormat(tt.tag, tt.field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPosition(t *testing.T) {
	pos, err := Position("2")
	assert.NoError(t, err)
	assert.Equal(t, 2, pos)

	pos, err = Position("{idx: 1}")
	assert.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = Position("{at:1}")
	assert.ErrorIs(t, err, errs.ErrInvalidTagFormat)

	_, err = Position("first")
	assert.ErrorIs(t, err, errs.ErrParseNumber)
}
