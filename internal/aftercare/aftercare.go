// Package aftercare holds post-treatment instructions per service.
package aftercare

// Kind tells which shape an Entry has.
type Kind string

const (
	KindList     Kind = "list"
	KindSections Kind = "sections"
)

// Sections is a titled breakdown of instructions. Absent sections are nil.
type Sections struct {
	Body              []string `json:"body,omitempty"`
	Face              []string `json:"face,omitempty"`
	General           []string `json:"general,omitempty"`
	Sun               []string `json:"sun,omitempty"`
	Activities        []string `json:"activities,omitempty"`
	WhenToSeekHelp    []string `json:"when_to_seek_help,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
}

// Entry is either a flat list of instructions or a set of sections.
type Entry struct {
	Kind       Kind      `json:"kind"`
	Items      []string  `json:"items,omitempty"`
	Sections   *Sections `json:"sections,omitempty"`
	IsFallback bool      `json:"is_fallback,omitempty"`
}

// List builds a flat entry.
func List(items ...string) Entry {
	return Entry{Kind: KindList, Items: items}
}

// Sectioned builds a sectioned entry.
func Sectioned(s Sections) Entry {
	return Entry{Kind: KindSections, Sections: &s}
}

// Fallback is shown for services without their own instructions.
func Fallback() Entry {
	e := List(
		"Avoid heavy makeup for 12–24 hours.",
		"Use SPF daily to protect your skin.",
		"Avoid saunas and intense heat for 24 hours.",
		"Use gentle skincare products.",
	)
	e.IsFallback = true
	return e
}

// Group is one block of instructions as rendered. Title is empty for flat lists.
type Group struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items"`
}

// Groups returns the entry's render blocks. Sections come out in a fixed
// order and empty ones are skipped.
func (e Entry) Groups() []Group {
	if e.Kind != KindSections || e.Sections == nil {
		return []Group{{Items: e.Items}}
	}

	s := e.Sections
	ordered := []Group{
		{Title: "Body Aftercare", Items: s.Body},
		{Title: "Face Aftercare", Items: s.Face},
		{Title: "General Tips", Items: s.General},
		{Title: "Sun Protection", Items: s.Sun},
		{Title: "Activities to Avoid", Items: s.Activities},
		{Title: "When to Seek Help", Items: s.WhenToSeekHelp},
		{Title: "Who Should Not Use This Treatment", Items: s.Contraindications},
	}
	groups := ordered[:0]
	for _, g := range ordered {
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Table maps service IDs to their instructions. Keys without a matching
// service are allowed.
type Table struct {
	entries map[string]Entry
}

// NewTable wraps entries.
func NewTable(entries map[string]Entry) *Table {
	return &Table{entries: entries}
}

// Default returns the clinic's aftercare table.
func Default() *Table {
	return NewTable(entries)
}

// Lookup returns the instructions for id, or Fallback when there are none.
func (t *Table) Lookup(id string) Entry {
	if e, ok := t.entries[id]; ok {
		return e
	}
	return Fallback()
}

// Has reports whether id has its own instructions.
func (t *Table) Has(id string) bool {
	_, ok := t.entries[id]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
