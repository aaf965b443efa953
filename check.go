package htmlcheck

import "slices"

// Check tests every selector against doc and returns the presence of each.
//
// Selectors are sorted by byte order before checking so the Result order does
// not depend on the order of the input list; the input slice is not modified.
// A selector error aborts the check and no partial Result is returned.
func Check(doc Document, selectors []string) (*Result, error) {
	sorted := slices.Clone(selectors)
	slices.Sort(sorted)

	result := NewResult()
	for _, sel := range sorted {
		present, err := doc.Has(sel)
		if err != nil {
			return nil, err
		}
		result.Set(sel, present)
	}
	return result, nil
}
