package llm

import (
	"fmt"
	"strings"

	"tracegate-api/internal/shared"
)

type contentKind int

const (
	contentUnrecognized contentKind = iota
	contentText
	contentParts
)

// Content is the tagged union a provider response reduces to before
// normalization: plain text, an ordered list of parts, or unrecognized.
type Content struct {
	kind  contentKind
	text  string
	parts []any
}

func TextContent(s string) Content {
	return Content{kind: contentText, text: s}
}

func PartsContent(parts []any) Content {
	return Content{kind: contentParts, parts: parts}
}

// ClassifyContent reduces a raw decoded content value to the union. Anything
// that is not a string or a list is unrecognized.
func ClassifyContent(raw any) Content {
	switch v := raw.(type) {
	case string:
		return TextContent(v)
	case []any:
		return PartsContent(v)
	default:
		return Content{kind: contentUnrecognized}
	}
}

// Normalize is a pure function from content to guaranteed non-empty text.
// Text survives verbatim when non-empty after trim. Parts contribute their
// text field (maps without one contribute nothing, non-map parts their
// string form) and join with newlines. Everything else is an EmptyResponse;
// structurally unexpected part shapes are a MalformedResponse.
func Normalize(c Content) (string, error) {
	switch c.kind {
	case contentText:
		if strings.TrimSpace(c.text) == "" {
			return "", shared.NewEmptyResponse()
		}
		return c.text, nil

	case contentParts:
		if len(c.parts) == 0 {
			return "", shared.NewEmptyResponse()
		}
		texts := make([]string, 0, len(c.parts))
		for _, part := range c.parts {
			text, err := partText(part)
			if err != nil {
				return "", shared.NewMalformedResponse(err)
			}
			if text != "" {
				texts = append(texts, text)
			}
		}
		joined := strings.Join(texts, "\n")
		if strings.TrimSpace(joined) == "" {
			return "", shared.NewEmptyResponse()
		}
		return joined, nil

	default:
		return "", shared.NewEmptyResponse()
	}
}

func partText(part any) (string, error) {
	switch v := part.(type) {
	case map[string]any:
		raw, ok := v["text"]
		if !ok {
			return "", nil
		}
		text, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("part text is %T, not a string", raw)
		}
		return text, nil
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
