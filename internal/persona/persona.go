// Package persona holds the compiled-in catalog of system-purpose
// presets used to seed a new conversation. The catalog is read-only for
// the process lifetime: the identifier set is closed and records are
// returned by value.
package persona

import (
	"regexp"
	"sort"
)

// ID identifies a persona preset. The set is closed; unknown ids are a
// caller bug surfaced by the ok flag on Get, not a runtime failure mode.
type ID string

const (
	Generic     ID = "generic"
	Developer   ID = "developer"
	Teacher     ID = "teacher"
	Translator  ID = "translator"
	Therapist   ID = "therapist"
	Chef        ID = "chef"
	Interviewer ID = "interviewer"
)

// DefaultID seeds conversations when the user has not picked a persona.
const DefaultID = Generic

// Record is one persona preset. SystemPrompt may contain {{Token}}
// placeholders resolved by ResolvePlaceholders before use.
type Record struct {
	ID             ID       `json:"id"`
	Title          string   `json:"title"`
	Symbol         string   `json:"symbol"`
	SystemPrompt   string   `json:"system_prompt"`
	ExamplePrompts []string `json:"example_prompts,omitempty"`
	VoiceID        string   `json:"voice_id,omitempty"`
	CallStarters   []string `json:"call_starters,omitempty"`
}

// Get returns the record for an identifier. Accessors hand out copies;
// mutating the result never touches the catalog.
func Get(id ID) (Record, bool) {
	rec, ok := catalog[id]
	if !ok {
		return Record{}, false
	}
	return copyRecord(rec), true
}

// Default returns the record behind DefaultID.
func Default() Record {
	rec, _ := Get(DefaultID)
	return rec
}

// All returns every record sorted by id for a stable listing order.
func All() []Record {
	out := make([]Record, 0, len(catalog))
	for _, rec := range catalog {
		out = append(out, copyRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ResolvePlaceholders substitutes {{Token}} markers in text with values
// from vars. Unknown tokens are left verbatim so a missing variable is
// visible instead of silently blank.
func ResolvePlaceholders(text string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		token := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[token]; ok {
			return v
		}
		return match
	})
}

func copyRecord(rec Record) Record {
	rec.ExamplePrompts = append([]string(nil), rec.ExamplePrompts...)
	rec.CallStarters = append([]string(nil), rec.CallStarters...)
	return rec
}
