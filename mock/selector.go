package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.SelectorLoader = (*SelectorLoader)(nil)

// SelectorLoader is a mock implementation of htmlcheck.SelectorLoader.
type SelectorLoader struct {
	LoadSelectorsFn func(path string) ([]string, error)
}

func (l *SelectorLoader) LoadSelectors(path string) ([]string, error) {
	return l.LoadSelectorsFn(path)
}
