package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// trailingCommaRegex matches ",}" and ",]" which some providers emit.
var trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

// errNoJSONObject is returned when the text holds no JSON object at all.
var errNoJSONObject = errors.New("no JSON object found")

// Parse decodes provider text into a Roadmap. It tolerates markdown fences,
// prose around the object, literal control characters inside strings and
// trailing commas. Truncated output is not repaired: a cut-off roadmap is
// malformed, not partial.
func Parse(text string) (*Roadmap, error) {
	cleaned := cleanResponse(text)
	if cleaned == "" {
		return nil, errNoJSONObject
	}

	// A JSON string wrapping the document, e.g. "\"{...}\"".
	if strings.HasPrefix(cleaned, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(cleaned), &inner); err == nil {
			return Parse(inner)
		}
	}

	idx := strings.IndexByte(cleaned, '{')
	if idx == -1 {
		return nil, errNoJSONObject
	}

	jsonPart := cleaned[idx:]
	r, err := decode(jsonPart)
	if err == nil {
		return r, nil
	}

	repaired := repairJSON(jsonPart)
	if repaired != jsonPart {
		if r, rerr := decode(repaired); rerr == nil {
			return r, nil
		}
	}
	return nil, fmt.Errorf("parse JSON: %w", err)
}

// decode reads the first JSON value and ignores anything after it.
func decode(s string) (*Roadmap, error) {
	var r Roadmap
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func repairJSON(input string) string {
	result := sanitizeControlChars(input)
	return trailingCommaRegex.ReplaceAllString(result, `$1`)
}

// sanitizeControlChars escapes literal control characters inside JSON strings.
func sanitizeControlChars(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	inString := false
	escaped := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if escaped {
			result.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			result.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			result.WriteByte(c)
			continue
		}
		if !inString {
			result.WriteByte(c)
			continue
		}

		switch c {
		case '\t':
			result.WriteString(`\t`)
		case '\n':
			result.WriteString(`\n`)
		case '\r':
			result.WriteString(`\r`)
		default:
			if c < 0x20 {
				result.WriteString(fmt.Sprintf(`\u%04x`, c))
			} else {
				result.WriteByte(c)
			}
		}
	}

	return result.String()
}

// cleanResponse strips markdown code fences.
func cleanResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") || strings.HasPrefix(response, "```JSON") {
		response = response[len("```json"):]
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")

	return strings.TrimSpace(response)
}
