package main

import "github.com/fwojciec/htmlcheck"

// CheckCmd loads a document and a selector list and reports which
// selectors are present.
type CheckCmd struct {
	Config htmlcheck.Config
}

// Run executes the check. Nothing is reported unless every step succeeds.
func (c *CheckCmd) Run(deps *Dependencies) error {
	doc, err := c.loadDocument(deps)
	if err != nil {
		return err
	}

	selectors, err := deps.Selectors.LoadSelectors(c.Config.ChecksFile())
	if err != nil {
		return err
	}

	result, err := htmlcheck.Check(doc, selectors)
	if err != nil {
		return err
	}

	return deps.Reporter.Report(result)
}

func (c *CheckCmd) loadDocument(deps *Dependencies) (htmlcheck.Document, error) {
	if c.Config.File != "" {
		return deps.Documents.LoadFile(c.Config.File)
	}

	doc, err := deps.Documents.LoadURL(deps.Ctx, c.Config.URL)
	if htmlcheck.ErrorCode(err) == htmlcheck.EFETCH {
		// Fetch detail goes to the log; the diagnostic names the URL only.
		return nil, htmlcheck.Errorf(htmlcheck.EFETCH, "Error accessing URL %s. Exiting.", c.Config.URL)
	}
	return doc, err
}
