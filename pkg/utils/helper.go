package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path segment to a positive database id
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
