// Package textutils provides small text coercion helpers for CSV fields.
package textutils

import "strings"

// TagSeparator sub-delimits the Tags column inside a single CSV field.
const TagSeparator = ";"

// SplitTags splits a semicolon-delimited tag list, trimming each tag and
// dropping empties, so ";summer; road-trip;" yields two tags.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, TagSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// JoinTags renders a tag list back into the semicolon-delimited CSV form.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}

// ParseYesNo coerces a boolean CSV field. "yes" and "true" (any casing)
// are true; everything else, including empty, is false.
func ParseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true":
		return true
	default:
		return false
	}
}

// FormatYesNo renders a boolean in the form the importer coerces back.
func FormatYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
