package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// stripFences removes a surrounding markdown code fence, with or without a
// language tag. Models sometimes wrap JSON output in one despite the
// structured-output config.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line.
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeResponse strips fences, validates against the schema, and unmarshals
// into out. Any failure is returned so callers can degrade to an empty
// result.
func decodeResponse(raw string, validator gojsonschema.JSONLoader, out any) error {
	doc := stripFences(raw)
	if err := validateSchema(validator, doc); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
