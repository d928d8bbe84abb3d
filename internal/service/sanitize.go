package service

import "strings"

// sanitizeModelOutput strips a Markdown code-fence wrapper from raw model
// output before parsing. Models routinely wrap JSON in ```json fences even
// when told not to; this is the only repair attempted. Idempotent:
// sanitizeModelOutput(sanitizeModelOutput(s)) == sanitizeModelOutput(s).
func sanitizeModelOutput(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
