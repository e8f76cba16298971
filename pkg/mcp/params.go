package mcp

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseActionInput parses a raw argument string from a worker into a
// structured map. Parsing cascade, first hit wins:
//
//  1. JSON object
//  2. JSON non-object (wrapped as {"input": value})
//  3. YAML with nested structure
//  4. "key: value" / "key=value" pairs, comma or newline separated
//  5. Raw string fallback ({"input": string})
//
// Empty input yields an empty map for no-parameter tools.
func ParseActionInput(input string) (map[string]interface{}, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return map[string]interface{}{}, nil
	}

	if result, ok := tryParseJSON(input); ok {
		return result, nil
	}
	if result, ok := tryParseYAML(input); ok {
		return result, nil
	}
	if result, ok := tryParseKeyValue(input); ok {
		return result, nil
	}
	return map[string]interface{}{"input": input}, nil
}

func tryParseJSON(input string) (map[string]interface{}, bool) {
	b := input[0]
	isJSONStart := b == '{' || b == '[' || b == '"' ||
		(b >= '0' && b <= '9') || b == '-' ||
		b == 't' || b == 'f' || b == 'n'
	if !isJSONStart {
		return nil, false
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, false
	}
	if m, ok := raw.(map[string]interface{}); ok {
		return m, true
	}
	return map[string]interface{}{"input": raw}, true
}

// tryParseYAML only accepts maps with nested structure. Plain "key: value"
// lines go to the key-value parser to avoid false positives on prose.
func tryParseYAML(input string) (map[string]interface{}, bool) {
	var result map[string]interface{}
	if err := yaml.Unmarshal([]byte(input), &result); err != nil {
		return nil, false
	}
	if len(result) == 0 {
		return nil, false
	}
	for _, v := range result {
		switch v.(type) {
		case []interface{}, map[string]interface{}:
			return result, true
		}
	}
	return nil, false
}

// tryParseKeyValue parses "key: value" or "key=value" pairs. Any part that
// fails rejects the whole input so it can fall through to the raw fallback.
func tryParseKeyValue(input string) (map[string]interface{}, bool) {
	normalized := strings.ReplaceAll(input, "\n", ",")
	result := make(map[string]interface{})
	for _, part := range strings.Split(normalized, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := splitPair(part)
		if !ok {
			return nil, false
		}
		result[key] = coerceValue(value)
	}
	if len(result) == 0 {
		return nil, false
	}
	return result, true
}

func splitPair(part string) (key, value string, ok bool) {
	for _, sep := range []string{":", "="} {
		if idx := strings.Index(part, sep); idx > 0 {
			k := strings.TrimSpace(part[:idx])
			v := strings.TrimSpace(part[idx+1:])
			if k != "" && !strings.Contains(k, " ") {
				return k, v, true
			}
		}
	}
	return "", "", false
}

// coerceValue converts bare string values to their natural types.
func coerceValue(s string) interface{} {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null", "none", "":
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
