package agents

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StreamResult is the reassembled output of a streamed agent invocation.
type StreamResult struct {
	Text   string
	Errors []string
}

// Failed reports whether the stream produced error chunks and no usable text.
func (r StreamResult) Failed() bool {
	return strings.TrimSpace(r.Text) == "" && len(r.Errors) > 0
}

// ParseStreamChunks folds a sequence of raw stream chunks into a single
// response. Chunks carrying a JSON object with type=="text" contribute
// their text; objects with a "content" field are stringified; objects
// with a "message" field are collected as errors. Non-JSON chunks that
// do not look like truncated objects are treated as plain text.
func ParseStreamChunks(chunks []string) StreamResult {
	var out StreamResult
	var b strings.Builder

	for _, chunk := range chunks {
		var decoded any
		if err := json.Unmarshal([]byte(chunk), &decoded); err != nil {
			if chunk != "" && !strings.HasPrefix(chunk, "{") {
				b.WriteString(chunk)
			}
			continue
		}

		obj, ok := decoded.(map[string]any)
		if !ok {
			b.WriteString(fmt.Sprintf("%v", decoded))
			continue
		}

		if t, _ := obj["type"].(string); t == "text" {
			if text, ok := obj["text"].(string); ok {
				b.WriteString(text)
			}
			continue
		}

		if content, ok := obj["content"]; ok {
			b.WriteString(fmt.Sprintf("%v", content))
			continue
		}

		if msg, ok := obj["message"]; ok {
			out.Errors = append(out.Errors, fmt.Sprintf("%v", msg))
		}
	}

	out.Text = b.String()
	return out
}
