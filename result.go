package webfetch

// ContentTypeText is the only content block type produced.
const ContentTypeText = "text"

// ContentBlock is one element of a tool response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the response envelope returned to the calling agent.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
}

// NewTextResult wraps text in a single-element response.
func NewTextResult(text string) *ToolResult {
	return &ToolResult{
		Content: []ContentBlock{{Type: ContentTypeText, Text: text}},
	}
}

// Text returns the concatenated text of all blocks.
func (r *ToolResult) Text() string {
	if r == nil {
		return ""
	}
	var s string
	for _, c := range r.Content {
		s += c.Text
	}
	return s
}
