// Package json writes check results as indented JSON objects.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fwojciec/htmlcheck"
)

// Indent is the nesting indentation of reports.
const Indent = "    "

// Ensure Reporter implements htmlcheck.Reporter at compile time.
var _ htmlcheck.Reporter = (*Reporter)(nil)

// Reporter writes results to an output stream.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes result as a single JSON object followed by a newline.
// Keys keep the result order.
func (r *Reporter) Report(result *htmlcheck.Result) error {
	b, err := Marshal(result)
	if err != nil {
		return err
	}
	_, err = r.w.Write(append(b, '\n'))
	return err
}

// Marshal encodes result as a JSON object indented with Indent.
// Characters significant to HTML are not escaped.
func Marshal(result *htmlcheck.Result) ([]byte, error) {
	entries := result.Entries()
	if len(entries) == 0 {
		return []byte("{}"), nil
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := encodeString(e.Selector)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		if e.Present {
			compact.WriteString("true")
		} else {
			compact.WriteString("false")
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", Indent); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "indent report: %v", err)
	}
	return out.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "encode selector %q: %v", s, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
