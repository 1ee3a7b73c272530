package models

// AVU is one attribute/value metadata pair.
type AVU struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MetadataSet is an ordered set of attribute/value pairs with unique names.
// Setting an existing name overwrites its value in place, so the last
// assignment deterministically wins while insertion order is preserved.
type MetadataSet struct {
	pairs []AVU
	index map[string]int
}

// NewMetadataSet returns an empty set.
func NewMetadataSet() *MetadataSet {
	return &MetadataSet{index: make(map[string]int)}
}

// Set adds or overwrites the named attribute.
func (m *MetadataSet) Set(name, value string) {
	if i, ok := m.index[name]; ok {
		m.pairs[i].Value = value
		return
	}
	m.index[name] = len(m.pairs)
	m.pairs = append(m.pairs, AVU{Name: name, Value: value})
}

// Get returns the value of the named attribute.
func (m *MetadataSet) Get(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.pairs[i].Value, true
}

// Len returns the number of pairs.
func (m *MetadataSet) Len() int { return len(m.pairs) }

// Pairs returns the pairs in insertion order. The returned slice is a copy.
func (m *MetadataSet) Pairs() []AVU {
	out := make([]AVU, len(m.pairs))
	copy(out, m.pairs)
	return out
}
