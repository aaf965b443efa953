package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of htmlcheck.Reporter.
type Reporter struct {
	ReportFn func(result *htmlcheck.Result) error
}

func (r *Reporter) Report(result *htmlcheck.Result) error {
	return r.ReportFn(result)
}
