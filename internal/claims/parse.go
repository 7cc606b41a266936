package claims

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSON = errors.New("claims: no decodable JSON object in model output")

// decodeLoose parses model output that should be a JSON object but often
// is not quite: it tries a direct parse, then strips a fenced code
// block, then scans for the first balanced {...} region.
func decodeLoose(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errNoJSON
	}
	if json.Unmarshal([]byte(raw), v) == nil {
		return nil
	}
	if inner := stripFence(raw); inner != "" && json.Unmarshal([]byte(inner), v) == nil {
		return nil
	}
	if obj := firstObject(raw); obj != "" && json.Unmarshal([]byte(obj), v) == nil {
		return nil
	}
	return errNoJSON
}

// stripFence removes a ```json ... ``` (or bare ```) wrapper.
func stripFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return ""
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// drop the language tag line
		if tag := strings.TrimSpace(rest[:nl]); tag == "" || len(tag) <= 10 {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// firstObject returns the first balanced top-level {...} region,
// respecting strings and escapes.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
