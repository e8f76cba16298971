package masking

import (
	"regexp"
	"strings"
)

// envAssignmentMasker masks values of env-style KEY=VALUE lines whose key
// names credential material. Regex patterns alone under-match here because
// the value side can be an arbitrary shape (short passwords, base64 blobs),
// so the decision keys off the variable name instead.
type envAssignmentMasker struct{}

var envLineRegex = regexp.MustCompile(`(?m)^(\s*(?:export\s+)?[A-Z][A-Z0-9_]*(?:TOKEN|SECRET|PASSWORD|PASSWD|KEY|CREDENTIALS)[A-Z0-9_]*\s*=\s*).+$`)

// Name implements Masker.
func (m *envAssignmentMasker) Name() string { return "env_assignment" }

// AppliesTo implements Masker.
func (m *envAssignmentMasker) AppliesTo(data string) bool {
	return strings.Contains(data, "=")
}

// Mask implements Masker.
func (m *envAssignmentMasker) Mask(data string) string {
	return envLineRegex.ReplaceAllString(data, "${1}"+MaskedValue)
}
