package cliutil

import "strings"

// StringList is a flag.Value collecting comma-separated values. The flag may
// be repeated; values accumulate in order and blanks are dropped.
type StringList []string

// String implements flag.Value.
func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set implements flag.Value.
func (s *StringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}
