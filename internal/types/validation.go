package types

import (
	"fmt"
	"strings"
)

// ValidateIDPresent rejects empty path identifiers before any HTTP call.
func ValidateIDPresent(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateNonEmpty rejects blank required text fields.
func ValidateNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}
