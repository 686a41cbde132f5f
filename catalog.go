package alloydoc

// Catalog is the immutable set of entries served for a process lifetime.
// It is safe for concurrent use because nothing mutates it after NewCatalog
// returns.
type Catalog struct {
	entries []*Entry
	byID    map[string]int
}

// NewCatalog builds a catalog from entries, preserving their order.
// Entries are copied so later changes by the caller are not observed.
// Returns EINVALID for malformed entries and ECONFLICT for duplicate ids.
func NewCatalog(entries []*Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]*Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if e == nil {
			return nil, Errorf(EINVALID, "entry %d is nil", i)
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[e.ID]; ok {
			return nil, Errorf(ECONFLICT, "duplicate entry id %q", e.ID)
		}

		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e.clone())
	}

	return c, nil
}

// All returns copies of every entry in insertion order.
func (c *Catalog) All() []*Entry {
	entries := make([]*Entry, len(c.entries))
	for i, e := range c.entries {
		entries[i] = e.clone()
	}
	return entries
}

// Get returns a copy of the entry with the given id.
// Returns ENOTFOUND if no such entry exists.
func (c *Catalog) Get(id string) (*Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, Errorf(ENOTFOUND, "entry %q not found", id)
	}
	return c.entries[i].clone(), nil
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func (e *Entry) clone() *Entry {
	cp := *e
	cp.Aliases = append([]string(nil), e.Aliases...)
	cp.Tags = append([]string(nil), e.Tags...)
	return &cp
}
