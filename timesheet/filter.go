package timesheet

import (
	"strings"

	"earlyexport/early"
)

const nonbillableLabel = "nonbillable"

// IsNonbillable reports whether the entry carries a tag labeled
// "nonbillable", compared case-insensitively. Entries without tags are
// always billable.
func IsNonbillable(entry early.TimeEntry) bool {
	for _, label := range entry.TagLabels() {
		if strings.EqualFold(strings.TrimSpace(label), nonbillableLabel) {
			return true
		}
	}
	return false
}

// FilterEntries drops non-billable entries unless includeNonbillable is set,
// in which case it is the identity. Entries are never mutated.
func FilterEntries(entries []early.TimeEntry, includeNonbillable bool) []early.TimeEntry {
	if includeNonbillable {
		return entries
	}

	out := make([]early.TimeEntry, 0, len(entries))
	for _, entry := range entries {
		if IsNonbillable(entry) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
