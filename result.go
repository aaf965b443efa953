package htmlcheck

// Entry is a single selector presence in a Result.
type Entry struct {
	Selector string
	Present  bool
}

// Result maps selectors to their presence in a document.
// Keys are unique and kept in insertion order.
type Result struct {
	entries []Entry
	index   map[string]int
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{index: make(map[string]int)}
}

// Set records the presence of a selector. Setting an existing selector
// overwrites its value without changing its position.
func (r *Result) Set(selector string, present bool) {
	if i, ok := r.index[selector]; ok {
		r.entries[i].Present = present
		return
	}
	r.index[selector] = len(r.entries)
	r.entries = append(r.entries, Entry{Selector: selector, Present: present})
}

// Get returns the presence of a selector and whether it was recorded.
func (r *Result) Get(selector string) (present bool, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.entries[i].Present, true
}

// Len returns the number of selectors recorded.
func (r *Result) Len() int {
	return len(r.entries)
}

// Keys returns the selectors in insertion order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Selector
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reporter writes a Result to an output stream.
type Reporter interface {
	Report(result *Result) error
}
