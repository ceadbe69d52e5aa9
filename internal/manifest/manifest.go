// Package manifest persists the per-profile record of installed themes.
//
// The manifest is a JSON object keyed by theme id. Key order is significant:
// it is the install order and drives stylesheet import order, so the codec in
// this package preserves it instead of relying on Go map ordering.
package manifest

import (
	"encoding/json"
)

// Record is the installed state of one theme in one profile.
type Record struct {
	Version   string
	UpdatedAt float64
	// ChromeTargets and ContentTargets are snapshotted from the catalog at
	// install time so uninstall and regeneration never depend on live catalog data.
	ChromeTargets  []string
	ContentTargets []string
	// Enabled is nil for records written before the field existed.
	Enabled *bool
	Extra   map[string]json.RawMessage
}

// IsEnabled reports whether the record contributes imports. Legacy records count as enabled.
func (r Record) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// NeedsMigration reports whether the record predates the enabled field.
func (r Record) NeedsMigration() bool {
	return r.Enabled == nil
}

// WithEnabled returns a copy of r with Enabled set to v.
func (r Record) WithEnabled(v bool) Record {
	out := r.Clone()
	out.Enabled = &v
	return out
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := Record{
		Version:        r.Version,
		UpdatedAt:      r.UpdatedAt,
		ChromeTargets:  cloneStrings(r.ChromeTargets),
		ContentTargets: cloneStrings(r.ContentTargets),
	}
	if r.Enabled != nil {
		v := *r.Enabled
		out.Enabled = &v
	}
	if r.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(r.Extra))
		for key, value := range r.Extra {
			out.Extra[key] = append(json.RawMessage(nil), value...)
		}
	}
	return out
}

// Entry pairs a theme id with its record.
type Entry struct {
	ID     string
	Record Record
}

// Manifest is an insertion-ordered mapping of theme id to Record.
type Manifest struct {
	order   []string
	records map[string]Record
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{records: make(map[string]Record)}
}

// Len returns the number of installed themes.
func (m *Manifest) Len() int {
	return len(m.order)
}

// IDs returns theme ids in manifest order.
func (m *Manifest) IDs() []string {
	return cloneStrings(m.order)
}

// Contains reports whether id is present.
func (m *Manifest) Contains(id string) bool {
	_, ok := m.records[id]
	return ok
}

// Get returns a copy of the record for id.
func (m *Manifest) Get(id string) (Record, bool) {
	record, ok := m.records[id]
	if !ok {
		return Record{}, false
	}
	return record.Clone(), true
}

// Set stores record under id. Existing keys keep their position; new keys are appended.
func (m *Manifest) Set(id string, record Record) {
	if m.records == nil {
		m.records = make(map[string]Record)
	}
	if _, ok := m.records[id]; !ok {
		m.order = append(m.order, id)
	}
	m.records[id] = record.Clone()
}

// Remove deletes id and reports whether it was present.
func (m *Manifest) Remove(id string) bool {
	if _, ok := m.records[id]; !ok {
		return false
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Entries returns copies of all entries in manifest order.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, Entry{ID: id, Record: m.records[id].Clone()})
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Manifest) Clone() *Manifest {
	out := New()
	for _, id := range m.order {
		out.Set(id, m.records[id])
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
