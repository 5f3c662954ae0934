package skill

import (
	"fmt"
	"strings"
)

// ValidateName checks that a skill name is safe to use as a directory
// name under the skills directory. Names with separators, "..", or a
// leading dot could place files outside the intended install location.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("skill name is required and must be non-empty")
	}
	if strings.ContainsAny(trimmed, "/\\") || strings.Contains(trimmed, "..") {
		return fmt.Errorf("skill name must not contain path separators or '..'")
	}
	if strings.HasPrefix(trimmed, ".") {
		return fmt.Errorf("skill name must not start with '.'")
	}
	return nil
}
