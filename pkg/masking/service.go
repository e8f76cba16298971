// Package masking redacts credential-shaped values and sensitive argument
// keys before anything is persisted, logged, or shown to the operator.
package masking

import (
	"log/slog"
	"strings"
)

// Service applies redaction to tool arguments, summaries, and error text.
// Created once at startup; thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns    []*CompiledPattern
	codeMaskers []Masker
	extraKeys   map[string]struct{}
}

// NewService creates a redaction service with the built-in patterns compiled
// and code-based maskers registered. extraSensitiveKeys extends the built-in
// sensitive argument-name set (module-declared metadata).
func NewService(extraSensitiveKeys []string) *Service {
	s := &Service{
		patterns:    builtinPatterns,
		codeMaskers: []Masker{&envAssignmentMasker{}},
		extraKeys:   make(map[string]struct{}, len(extraSensitiveKeys)),
	}
	for _, k := range extraSensitiveKeys {
		s.extraKeys[strings.ToLower(k)] = struct{}{}
	}

	slog.Info("Masking service initialized",
		"builtin_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers),
		"extra_sensitive_keys", len(extraSensitiveKeys))
	return s
}

// IsSensitiveKey reports whether an argument name is in the sensitive set.
func (s *Service) IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if _, ok := sensitiveKeys[k]; ok {
		return true
	}
	_, ok := s.extraKeys[k]
	return ok
}

// MaskString applies all regex patterns and code maskers to free text.
func (s *Service) MaskString(data string) string {
	if data == "" {
		return data
	}
	for _, m := range s.codeMaskers {
		if m.AppliesTo(data) {
			data = m.Mask(data)
		}
	}
	for _, p := range s.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}

// MaskArgs returns a deep copy of tool args with sensitive keys fully masked
// and credential-shaped substrings masked in the remaining string values.
// The input map is never modified.
func (s *Service) MaskArgs(args map[string]interface{}) map[string]interface{} {
	if args == nil {
		return nil
	}
	out := make(map[string]interface{}, len(args))
	for k, v := range args {
		if s.IsSensitiveKey(k) {
			out[k] = MaskedValue
			continue
		}
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return s.MaskString(val)
	case map[string]interface{}:
		return s.MaskArgs(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}

// MaskError strips credential values from an error message before it leaves
// a component boundary.
func (s *Service) MaskError(err error) string {
	if err == nil {
		return ""
	}
	return s.MaskString(err.Error())
}
