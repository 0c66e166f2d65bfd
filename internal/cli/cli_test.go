package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	c := &CLI{}

	cases := []struct {
		input string
		want  []string
	}{
		{"buscar focker", []string{"buscar", "focker"}},
		{`proposta 3 "tenho muito interesse"`, []string{"proposta", "3", "tenho muito interesse"}},
		{"  destaques  ", []string{"destaques"}},
		{`admin nova "Focker 272 GTO" 2022 489000 4`, []string{"admin", "nova", "Focker 272 GTO", "2022", "489000", "4"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, c.ParseArgs(tc.input), "input %q", tc.input)
	}
}

func TestExecuteCommand_Unknown(t *testing.T) {
	c := &CLI{}
	err := c.ExecuteCommand([]string{"inexistente"})
	assert.ErrorContains(t, err, "comando desconhecido")
}

func TestExecuteCommand_Empty(t *testing.T) {
	c := &CLI{}
	err := c.ExecuteCommand(nil)
	assert.Error(t, err)
}
