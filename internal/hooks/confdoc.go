package hooks

import (
	"strings"
)

// confDoc is a line-preserving model of a flat key=value config file (the
// format mako and similar daemons use). Mutating named keys and
// serializing keeps every other line byte-identical, which is what makes
// repeated applications of the same theme produce identical files.
type confDoc struct {
	lines []string
}

// parseConfDoc splits content into lines, tolerating a missing trailing
// newline.
func parseConfDoc(content string) *confDoc {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return &confDoc{}
	}
	return &confDoc{lines: strings.Split(content, "\n")}
}

// Set replaces the value of key in place, or appends the assignment when
// the key does not occur. Only the first occurrence in the top section
// (before any [section] header) is rewritten; commented lines are left
// alone.
func (d *confDoc) Set(key, value string) {
	assignment := key + "=" + value
	inSection := false
	for i, line := range d.lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inSection = true
			continue
		}
		if inSection || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, _, found := strings.Cut(trimmed, "=")
		if found && strings.TrimSpace(name) == key {
			if line == assignment {
				return
			}
			d.lines[i] = assignment
			return
		}
	}

	// Insert before the first section header so the assignment stays in
	// the global section.
	for i, line := range d.lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			d.lines = append(d.lines[:i], append([]string{assignment}, d.lines[i:]...)...)
			return
		}
	}
	d.lines = append(d.lines, assignment)
}

// String serializes the document with a trailing newline.
func (d *confDoc) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	return strings.Join(d.lines, "\n") + "\n"
}
