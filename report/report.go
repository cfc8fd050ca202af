package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/aasierra/acg/checksum"
)

// DefaultFormat mirrors the sha256sum line layout.
const DefaultFormat = "{digest}  {path}"

// DefaultFailureFormat is the text line written for a failed file.
const DefaultFailureFormat = "{path}: FAILED: {error}"

// Record is the JSON form of one outcome.
type Record struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
	Succeeded bool   `json:"succeeded"`
	Digest    string `json:"digest,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewRecord captures res for path.
func NewRecord(
	path string,
	alg checksum.Algorithm,
	res checksum.Outcome,
) Record {
	rec := Record{
		Path:      path,
		Algorithm: string(alg),
		Succeeded: res.Succeeded(),
	}

	if digest, ok := res.Value(); ok {
		rec.Digest = digest
	}

	if msg, ok := res.ErrorMessage(); ok {
		rec.Kind = res.Kind().String()
		rec.Error = msg
	}

	return rec
}

// Writer prints outcomes. Successes go to Out; in text mode failures
// go to Err so that Out stays a clean list of digests.
type Writer struct {
	Out io.Writer
	Err io.Writer

	// JSON selects JSON lines on Out for every outcome.
	JSON bool

	// Format and FailureFormat are fasttemplate strings with {…} tags.
	// Empty values fall back to DefaultFormat and DefaultFailureFormat.
	Format        string
	FailureFormat string
}

// Write renders one outcome.
func (w *Writer) Write(
	path string,
	alg checksum.Algorithm,
	res checksum.Outcome,
) error {
	const errCtx = "writing report"

	rec := NewRecord(path, alg, res)

	if w.JSON {
		if err := json.NewEncoder(w.Out).Encode(rec); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	out, format := w.Out, w.Format
	if format == "" {
		format = DefaultFormat
	}

	if !rec.Succeeded {
		out, format = w.Err, w.FailureFormat
		if format == "" {
			format = DefaultFailureFormat
		}
	}

	if _, err := io.WriteString(out, Render(format, rec)+"\n"); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Render substitutes rec's fields into format. Unknown tags are kept
// as-is.
func Render(format string, rec Record) string {
	return fasttemplate.ExecuteStringStd(
		format, "{", "}", map[string]interface{}{
			"path":      rec.Path,
			"algorithm": rec.Algorithm,
			"digest":    rec.Digest,
			"kind":      rec.Kind,
			"error":     rec.Error,
		},
	)
}
