package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrabmueller/mudstuck/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{
			name:  "bare verb",
			input: "eat",
			want:  Command{Verb: VerbEat},
		},
		{
			name:  "verb and object",
			input: "get lamp",
			want:  Command{Verb: VerbGet, Direct: domain.Name{"lamp"}},
		},
		{
			name:  "synonym and articles",
			input: "take the rusty metal door",
			want:  Command{Verb: VerbGet, Direct: domain.Name{"rusty", "metal", "door"}},
		},
		{
			name:  "connector and indirect object",
			input: "put a coin into the purse",
			want: Command{
				Verb:      VerbPut,
				Direct:    domain.Name{"coin"},
				Connector: ConnectorInto,
				Indirect:  domain.Name{"purse"},
			},
		},
		{
			name:  "connector right after verb",
			input: "go to door",
			want:  Command{Verb: VerbMove, Connector: ConnectorTo, Indirect: domain.Name{"door"}},
		},
		{
			name:  "bare direction",
			input: "north",
			want:  Command{Verb: VerbMove, Direct: domain.Name{"north"}},
		},
		{
			name:  "extra spaces and case",
			input: "  DRINK   Wasser  ",
			want:  Command{Verb: VerbDrink, Direct: domain.Name{"wasser"}},
		},
		{
			name:  "german lowercasing",
			input: "use TÜR",
			want:  Command{Verb: VerbUse, Direct: domain.Name{"tür"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"", "command expected"},
		{"    ", "command expected"},
		{"dance", "not a valid verb"},
		{"put coin into", "indirect object required after connector"},
		{"put coin into the", "indirect object required after connector"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tt.msg, pe.Msg)
		})
	}
}

func TestCommand_Direction(t *testing.T) {
	cmd, err := Parse("go west")
	require.NoError(t, err)
	d, ok := cmd.Direction()
	assert.True(t, ok)
	assert.Equal(t, DirectionWest, d)

	cmd, err = Parse("go rusty metal door")
	require.NoError(t, err)
	_, ok = cmd.Direction()
	assert.False(t, ok)
}

func TestWords_String(t *testing.T) {
	assert.Equal(t, "GET", ParseVerb("acquire").String())
	assert.Equal(t, "UNKNOWN", Verb(200).String())
	assert.Equal(t, "BESIDE", ConnectorBeside.String())
	assert.Equal(t, "NONE", ParseConnector("beside").String())
	assert.Equal(t, "SOUTH", ParseDirection("south").String())
}
