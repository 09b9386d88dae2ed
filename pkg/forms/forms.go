// Package forms holds the field normalization rules shared by the JSON and
// multipart request paths: list fields accepted as either a real array or a
// comma-separated string, string booleans, and loosely formatted dates.
package forms

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// StringList unmarshals from either a JSON array of strings or a single
// comma-separated string. Both encodings normalize to the same trimmed slice.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = trimAll(arr)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Split(raw)
	return nil
}

// Split turns a comma-separated string into a trimmed list, dropping empty
// entries.
func Split(raw string) []string {
	parts := strings.Split(raw, ",")
	return trimAll(parts)
}

func trimAll(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseBool reads form-field booleans the way browsers send them: only the
// literal "true" (any case) or "1" is true.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	}
	return false
}

// ParseInt returns fallback when raw is empty or not a number.
func ParseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDate accepts RFC3339 or plain dates. The zero time and false are
// returned for anything unparseable.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
