package early

import "testing"

func TestTimeEntry_ActivityLabelFallback(t *testing.T) {
	t.Parallel()

	nested := TimeEntry{Activity: &Activity{Name: "Development"}, ActivityName: "ignored"}
	if got := nested.ActivityLabel(); got != "Development" {
		t.Fatalf("expected nested activity name, got %q", got)
	}

	flat := TimeEntry{ActivityName: "Support"}
	if got := flat.ActivityLabel(); got != "Support" {
		t.Fatalf("expected flat activity name, got %q", got)
	}

	empty := TimeEntry{Activity: &Activity{}}
	if got := empty.ActivityLabel(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestTimeEntry_NoteText(t *testing.T) {
	t.Parallel()

	if got := (TimeEntry{}).NoteText(); got != "" {
		t.Fatalf("expected empty text for missing note, got %q", got)
	}
	if got := (TimeEntry{Note: &Note{Text: "   "}}).NoteText(); got != "" {
		t.Fatalf("expected empty text for blank note, got %q", got)
	}
	if got := (TimeEntry{Note: &Note{Text: "standup"}}).NoteText(); got != "standup" {
		t.Fatalf("unexpected note text: %q", got)
	}
}

func TestNormalizeEntries_InvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := normalizeEntries([]byte("not json")); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}

func TestNormalizeEntries_PrefersFirstKnownKey(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"timeEntries":[{"activityName":"A"}],"data":[{"activityName":"B"},{"activityName":"C"}]}`)
	entries, err := normalizeEntries(raw)
	if err != nil {
		t.Fatalf("normalizeEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].ActivityName != "A" {
		t.Fatalf("expected timeEntries to win, got %+v", entries)
	}
}
