package llm

import (
	"encoding/json"
)

// ContentBlock is one entry of a response's content array. The concrete
// type is one of *TextBlock, *ToolUseBlock, *ThinkingBlock or *UnknownBlock.
type ContentBlock interface {
	BlockType() string
}

type TextBlock struct {
	Text string
}

type ToolUseBlock struct {
	ID   string
	Name string
}

type ThinkingBlock struct {
	Thinking string
}

// UnknownBlock holds any block type this client does not model.
type UnknownBlock struct {
	Type string
}

func (*TextBlock) BlockType() string      { return "text" }
func (*ToolUseBlock) BlockType() string   { return "tool_use" }
func (*ThinkingBlock) BlockType() string  { return "thinking" }
func (b *UnknownBlock) BlockType() string { return b.Type }

// ContentBlocks decodes a JSON content array into typed blocks.
type ContentBlocks []ContentBlock

type rawContentBlock struct {
	Type     string  `json:"type"`
	Text     *string `json:"text"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Thinking string  `json:"thinking"`
}

func (c *ContentBlocks) UnmarshalJSON(data []byte) error {
	var raw []rawContentBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	blocks := make(ContentBlocks, 0, len(raw))
	for _, r := range raw {
		blocks = append(blocks, decodeBlock(r))
	}
	*c = blocks
	return nil
}

func decodeBlock(r rawContentBlock) ContentBlock {
	switch r.Type {
	case "text":
		if r.Text == nil {
			return &UnknownBlock{Type: r.Type}
		}
		return &TextBlock{Text: *r.Text}
	case "tool_use":
		return &ToolUseBlock{ID: r.ID, Name: r.Name}
	case "thinking":
		return &ThinkingBlock{Thinking: r.Thinking}
	case "":
		// Untyped blocks that carry text are treated as text.
		if r.Text != nil {
			return &TextBlock{Text: *r.Text}
		}
		return &UnknownBlock{}
	default:
		return &UnknownBlock{Type: r.Type}
	}
}

// FirstText returns the text of the first text block.
func (c ContentBlocks) FirstText() (string, bool) {
	for _, block := range c {
		if text, ok := block.(*TextBlock); ok {
			return text.Text, true
		}
	}
	return "", false
}
