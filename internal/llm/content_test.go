package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlocks_Decode(t *testing.T) {
	var blocks ContentBlocks
	err := json.Unmarshal([]byte(`[
		{"type": "text", "text": "ls -la"},
		{"type": "tool_use", "id": "toolu_1", "name": "exec", "input": {}},
		{"type": "thinking", "thinking": "hmm", "signature": "abc"},
		{"type": "redacted_thinking", "data": "xyz"},
		{"text": "untyped"}
	]`), &blocks)
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	assert.Equal(t, &TextBlock{Text: "ls -la"}, blocks[0])
	assert.Equal(t, &ToolUseBlock{ID: "toolu_1", Name: "exec"}, blocks[1])
	assert.Equal(t, &ThinkingBlock{Thinking: "hmm"}, blocks[2])
	assert.Equal(t, &UnknownBlock{Type: "redacted_thinking"}, blocks[3])
	assert.Equal(t, &TextBlock{Text: "untyped"}, blocks[4])

	assert.Equal(t, "text", blocks[0].BlockType())
	assert.Equal(t, "tool_use", blocks[1].BlockType())
	assert.Equal(t, "thinking", blocks[2].BlockType())
	assert.Equal(t, "redacted_thinking", blocks[3].BlockType())
}

func TestContentBlocks_FirstText(t *testing.T) {
	tests := []struct {
		name   string
		blocks ContentBlocks
		text   string
		ok     bool
	}{
		{"empty", nil, "", false},
		{"only tool use", ContentBlocks{&ToolUseBlock{ID: "1"}}, "", false},
		{"first of several", ContentBlocks{&TextBlock{Text: "a"}, &TextBlock{Text: "b"}}, "a", true},
		{"after thinking", ContentBlocks{&ThinkingBlock{}, &TextBlock{Text: "pwd"}}, "pwd", true},
		{"empty text still counts", ContentBlocks{&TextBlock{Text: ""}}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := tt.blocks.FirstText()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestContentBlocks_TextTypeWithoutTextIsIgnored(t *testing.T) {
	var blocks ContentBlocks
	require.NoError(t, json.Unmarshal([]byte(`[{"type": "text"}]`), &blocks))

	_, ok := blocks.FirstText()
	assert.False(t, ok)
}
