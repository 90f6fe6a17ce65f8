// Package intern canonicalizes byte sequences into identity-comparable names.
package intern

import "github.com/you-not-fish/lang/internal/buf"

// Name is the canonical handle for an interned byte sequence.
// Two names obtained from the same Table are equal (==) iff their
// contents are byte-identical.
type Name struct {
	text string
}

// String returns the interned text.
func (n *Name) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.text
}

// Len returns the length in bytes of the interned text.
func (n *Name) Len() int { return len(n.text) }

// Table is an append-only intern table. A Table is owned by a single
// scanning session and is not safe for concurrent use.
type Table struct {
	index   map[string]*Name
	records buf.Buffer[*Name] // insertion order
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]*Name)}
}

// Intern returns the canonical name for b. The bytes are copied on first
// insertion, so the caller may reuse b afterwards.
func (t *Table) Intern(b []byte) *Name {
	// The string(b) conversion in a map index does not allocate.
	if n, ok := t.index[string(b)]; ok {
		return n
	}
	return t.insert(string(b))
}

// InternString is Intern for a string.
func (t *Table) InternString(s string) *Name {
	if n, ok := t.index[s]; ok {
		return n
	}
	return t.insert(s)
}

func (t *Table) insert(s string) *Name {
	if t.index == nil {
		t.index = make(map[string]*Name)
	}
	n := &Name{text: s}
	t.index[s] = n
	t.records.Push(n)
	return n
}

// Lookup returns the name for s if it has already been interned.
func (t *Table) Lookup(s string) (*Name, bool) {
	n, ok := t.index[s]
	return n, ok
}

// Len returns the number of distinct names.
func (t *Table) Len() int { return t.records.Len() }

// Names returns every name in insertion order.
func (t *Table) Names() []*Name {
	out := make([]*Name, 0, t.records.Len())
	for _, n := range t.records.All() {
		out = append(out, n)
	}
	return out
}

// Reset drops every record. Names handed out earlier stay valid as values
// but are no longer canonical for this table.
func (t *Table) Reset() {
	clear(t.index)
	t.records.Free()
}
