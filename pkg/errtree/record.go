package errtree

// TypeRecord identifies one discovered error type. Parents holds the
// qualifying direct parents in the order they are declared on the type
// itself. A record with no parents is treated as a direct child of the
// registry root when the tree is built.
type TypeRecord struct {
	Name    string
	Parents []*TypeRecord
}

// Multiparented reports whether the record has more than one qualifying
// parent. These records are marked in the output and duplicated under each
// parent in all-paths mode
func (t *TypeRecord) Multiparented() bool {
	return len(t.Parents) > 1
}

// AddParent appends a qualifying parent, preserving declaration order.
// Adding the same parent twice is a no-op
func (t *TypeRecord) AddParent(p *TypeRecord) {
	for _, v := range t.Parents {
		if v == p {
			return
		}
	}
	t.Parents = append(t.Parents, p)
}

// Registry accumulates the discovered records. The root is the implicit
// tree root and is never itself a record. Insertion order is preserved so
// the same scan always yields the same registry
type Registry struct {
	root    *TypeRecord
	records []*TypeRecord
	byName  map[string]*TypeRecord
}

func NewRegistry(rootLabel string) *Registry {
	return &Registry{
		root:   &TypeRecord{Name: rootLabel},
		byName: make(map[string]*TypeRecord),
	}
}

// Root returns the sentinel record for the base error type. Use it as the
// parent for records that descend from the base type directly
func (r *Registry) Root() *TypeRecord {
	return r.root
}

// Add inserts a record for the given display name. If the name was already
// added the existing record is returned, so re-discovering a type through
// another package is harmless
func (r *Registry) Add(name string) *TypeRecord {
	if rec, ok := r.byName[name]; ok {
		return rec
	}
	rec := &TypeRecord{Name: name}
	r.byName[name] = rec
	r.records = append(r.records, rec)
	return rec
}

func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns the records in discovery order
func (r *Registry) Records() []*TypeRecord {
	return r.records
}
