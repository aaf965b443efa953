package htmlcheck

// SelectorLoader reads a list of CSS selectors from a file.
type SelectorLoader interface {
	// LoadSelectors returns the selectors in file order.
	// Returns EPARSE if the content is not a list of strings.
	LoadSelectors(path string) ([]string, error)
}
