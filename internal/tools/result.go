package tools

import "encoding/json"

// NormalizeResult applies the gateway's one opportunistic normalization: a
// string result that parses as JSON is replaced by the parsed value; on
// parse failure the string passes through verbatim. Non-string results are
// returned unchanged. It never fails.
func NormalizeResult(result any) any {
	s, ok := result.(string)
	if !ok {
		return result
	}

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return s
	}
	return parsed
}
