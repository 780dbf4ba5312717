package utils

import "github.com/google/uuid"

// IsUUID reports whether s parses as a UUID. Entity ids that fail this
// check cannot exist, so lookups short-circuit to not found.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
