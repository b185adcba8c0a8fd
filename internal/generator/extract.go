package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtroode/flashgen-server/internal/model"
)

// extractJSON strips an optional markdown fence and returns the JSON array
// the completion carries. Any other top-level value is a format error.
func extractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		if nl := strings.Index(content[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		} else {
			content = content[start:]
		}
	}

	content = strings.TrimSpace(content)

	start := strings.IndexAny(content, "[{")
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON found", model.ErrGenerationFormat)
	}
	if content[start] == '{' {
		return "", fmt.Errorf("%w: expected a JSON array", model.ErrGenerationFormat)
	}

	// first '[' that opens a complete array wins; a valid array has
	// exactly one closing bracket that makes it parse
	for ; start != -1; start = nextIndex(content, start, '[') {
		for end := nextIndex(content, start, ']'); end != -1; end = nextIndex(content, end, ']') {
			if span := content[start : end+1]; json.Valid([]byte(span)) {
				return span, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no complete JSON array", model.ErrGenerationFormat)
}

// nextIndex returns the position of c after i, or -1.
func nextIndex(s string, i int, c byte) int {
	n := strings.IndexByte(s[i+1:], c)
	if n == -1 {
		return -1
	}
	return i + 1 + n
}
