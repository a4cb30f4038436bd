package util

import "strings"

// JoinNonEmpty joins the values that are not blank, skipping the rest entirely
// so no doubled separators appear
func JoinNonEmpty(separator string, values ...string) string {
	var present []string

	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			present = append(present, value)
		}
	}

	return strings.Join(present, separator)
}

func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length]
}
