package utils

import (
	"strconv"
)

// ParseID parses a positive decimal path id. ok is false for anything that
// would not have matched an integer path segment, including overflow.
func ParseID(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
