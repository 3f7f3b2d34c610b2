package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"plain", "ls -la", "ls -la"},
		{"surrounding whitespace", "  \n ls -la \n\n", "ls -la"},
		{"bare fence", "```\nls -la\n```", "ls -la"},
		{"fence with language tag", "```bash\nls -la\n```", "ls -la"},
		{"fence on one line", "```ls -la```", "ls -la"},
		{"unterminated fence", "```sh\nls -la", "ls -la"},
		{"inline backticks", "`ls -la`", "ls -la"},
		{"inner backticks kept", "echo `date` done", "echo `date` done"},
		{"command substitution kept", "`a` `b`", "`a` `b`"},
		{"multi-line script", "```\ncd /tmp\nls\n```", "cd /tmp\nls"},
		{"empty", "", ""},
		{"empty fence", "```\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCommand(tt.reply))
		})
	}
}

func TestRefusal(t *testing.T) {
	refusal, ok := Refusal(`echo "Error: cannot access the network"`)
	require.True(t, ok)
	assert.Equal(t, "cannot access the network", refusal.Reason)
	assert.Equal(t, "no command suggested: cannot access the network", refusal.Error())

	for _, command := range []string{
		`echo "hello"`,
		`echo "Error: unterminated`,
		`echo "Error: a" && rm x"`,
		"ls",
	} {
		_, ok := Refusal(command)
		assert.False(t, ok, command)
	}
}

func TestStatements(t *testing.T) {
	assert.Equal(t, 1, Statements("ls -la"))
	assert.Equal(t, 1, Statements("make && make install"))
	assert.Equal(t, 1, Statements("cat a | grep b"))
	assert.Equal(t, 2, Statements("cd /tmp; ls"))
	assert.Equal(t, 2, Statements("cd /tmp\nls"))
	assert.Equal(t, 0, Statements(""))
	assert.Equal(t, 0, Statements("if then fi ("))
}
