package masking

import (
	"regexp"
)

// MaskedValue replaces credential-shaped or sensitive values wherever the
// redactor fires.
const MaskedValue = "***MASKED***"

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are the credential-shaped regexes applied to every string
// value before persistence or logging. Order matters: broader URL/JWT shapes
// run before the generic token shape.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "url_credentials",
		Regex:       regexp.MustCompile(`://[^/\s:@]+:[^/\s@]+@`),
		Replacement: "://" + MaskedValue + "@",
		Description: "user:password pairs embedded in URLs",
	},
	{
		Name:        "url_token_param",
		Regex:       regexp.MustCompile(`([?&](?:token|access_token|api_key|apikey|key|secret)=)[^&\s]+`),
		Replacement: "$1" + MaskedValue,
		Description: "tokens passed as URL query parameters",
	},
	{
		Name:        "jwt",
		Regex:       regexp.MustCompile(`\beyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]+\b`),
		Replacement: MaskedValue,
		Description: "JWT-like three-part tokens",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)\b(bearer\s+)[A-Za-z0-9._~+/=-]{8,}`),
		Replacement: "$1" + MaskedValue,
		Description: "Authorization bearer tokens",
	},
	{
		Name:        "api_key_assignment",
		Regex:       regexp.MustCompile(`(?i)\b((?:api[_-]?key|token|secret|password|passwd)\s*[:=]\s*)["']?[A-Za-z0-9._~+/-]{6,}["']?`),
		Replacement: "$1" + MaskedValue,
		Description: "key=value credential assignments in free text",
	},
}

// sensitiveKeys is the argument-name set whose values are always masked
// regardless of shape. Matched case-insensitively on the last path segment.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"passwd":        {},
	"secret":        {},
	"token":         {},
	"api_key":       {},
	"apikey":        {},
	"access_token":  {},
	"refresh_token": {},
	"authorization": {},
	"credential":    {},
	"credentials":   {},
	"private_key":   {},
	"bot_token":     {},
}
