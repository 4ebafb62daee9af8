package early

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimeEntry is the canonical time-entry record produced at the API boundary.
// Fields mirror the upstream payload; older payloads carry the activity name
// in a flat activityName field instead of a nested activity object.
type TimeEntry struct {
	ID           string         `json:"id"`
	Activity     *Activity      `json:"activity"`
	ActivityName string         `json:"activityName"`
	Duration     *EntryDuration `json:"duration"`
	Note         *Note          `json:"note"`
}

type Activity struct {
	Name string `json:"name"`
}

// EntryDuration carries the raw start/stop timestamps. Either may be absent,
// for example while an entry is still running.
type EntryDuration struct {
	StartedAt string `json:"startedAt"`
	StoppedAt string `json:"stoppedAt"`
}

type Note struct {
	Text string `json:"text"`
	Tags []Tag  `json:"tags"`
}

type Tag struct {
	Label string `json:"label"`
}

// ActivityLabel returns the activity name, preferring the nested activity
// object over the flat activityName field.
func (e TimeEntry) ActivityLabel() string {
	if e.Activity != nil && e.Activity.Name != "" {
		return e.Activity.Name
	}
	return e.ActivityName
}

// NoteText returns the note text, or the empty string when the note is
// absent or blank.
func (e TimeEntry) NoteText() string {
	if e.Note == nil || strings.TrimSpace(e.Note.Text) == "" {
		return ""
	}
	return e.Note.Text
}

// TagLabels returns the labels of all tags attached to the entry's note.
func (e TimeEntry) TagLabels() []string {
	if e.Note == nil || len(e.Note.Tags) == 0 {
		return nil
	}
	labels := make([]string, 0, len(e.Note.Tags))
	for _, tag := range e.Note.Tags {
		labels = append(labels, tag.Label)
	}
	return labels
}

// normalizeEntries collapses the upstream response shapes into one canonical
// entry list. The API returns either a bare array or an object exposing the
// list under timeEntries, data, or entries. Nothing past this point re-inspects
// the ambiguous shape.
func normalizeEntries(raw []byte) ([]TimeEntry, error) {
	var list []TimeEntry
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		TimeEntries []TimeEntry `json:"timeEntries"`
		Data        []TimeEntry `json:"data"`
		Entries     []TimeEntry `json:"entries"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("decode time entries response: %w", err)
	}

	switch {
	case wrapper.TimeEntries != nil:
		return wrapper.TimeEntries, nil
	case wrapper.Data != nil:
		return wrapper.Data, nil
	case wrapper.Entries != nil:
		return wrapper.Entries, nil
	}
	return []TimeEntry{}, nil
}
