package checksum

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// DefaultBufferSize is the chunk size used when Engine.BufferSize is
// not positive.
const DefaultBufferSize = 1024

// Engine computes file digests. Its fields are only read, so one Engine
// may serve concurrent calls; each call owns its own buffer, accumulator
// and file handle.
type Engine struct {
	// BufferSize is the number of bytes read per chunk.
	BufferSize int

	// open replaces os.Open in tests.
	open func(name string) (io.ReadCloser, error)
}

var defaultEngine = &Engine{BufferSize: DefaultBufferSize}

// GenerateSHA256 computes the SHA-256 digest of the file at path.
func GenerateSHA256(path string) Outcome {
	return defaultEngine.Compute(path, SHA256)
}

// Compute streams the file at path through alg using the default
// buffer size.
func Compute(path string, alg Algorithm) Outcome {
	return defaultEngine.Compute(path, alg)
}

// Compute streams the file at path through alg and returns the hex
// digest, or a failed Outcome describing what went wrong.
func (e *Engine) Compute(path string, alg Algorithm) Outcome {
	slog.Debug(
		"computing digest",
		"path", path,
		"algorithm", alg,
	)

	sum, err := e.digestFile(path, alg)
	if err != nil {
		slog.Debug(
			"digest failed",
			"path", path,
			"algorithm", alg,
			"kind", err.Kind,
		)

		return Failure(err)
	}

	return Success(EncodeHex(sum))
}

func (e *Engine) bufferSize() int {
	if e == nil || e.BufferSize <= 0 {
		return DefaultBufferSize
	}

	return e.BufferSize
}

func (e *Engine) openFile(path string) (io.ReadCloser, error) {
	if e != nil && e.open != nil {
		return e.open(path)
	}

	return os.Open(path) //nolint:gosec // path is caller-provided by design
}

// digestFile opens path, feeds it through a fresh accumulator and
// returns the finalized digest. The file is closed on every path.
func (e *Engine) digestFile(
	path string,
	alg Algorithm,
) (sum []byte, retErr *Error) {
	fail := func(kind Kind, detail string, err error) *Error {
		return &Error{
			Kind:      kind,
			Path:      path,
			Algorithm: alg,
			Detail:    detail,
			Err:       err,
		}
	}

	ha, ok := alg.newHash()
	if !ok {
		return nil, fail(
			AlgorithmUnavailable, "no such algorithm", nil,
		)
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, openFailure(fail, err)
	}

	if !st.Mode().IsRegular() {
		return nil, fail(
			SourceUnavailable,
			fmt.Sprintf("not a regular file (%s)", st.Mode().Type()),
			nil,
		)
	}

	fi, err := e.openFile(path)
	if err != nil {
		return nil, openFailure(fail, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			sum = nil
			retErr = fail(IoFailure, "closing file", closeErr)
		}
	}()

	if err := feed(ha, fi, make([]byte, e.bufferSize())); err != nil {
		return nil, fail(IoFailure, "reading file", err)
	}

	return ha.Sum(nil), nil
}

// openFailure classifies an error from stat or open.
func openFailure(
	fail func(Kind, string, error) *Error,
	err error,
) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(SourceUnavailable, "no such file", err)
	case errors.Is(err, fs.ErrPermission):
		return fail(AccessDenied, "permission denied", err)
	default:
		return fail(SourceUnavailable, "cannot open file", err)
	}
}

// feed reads r to EOF in len(buf) chunks and writes every chunk, in
// order, to ha. Bytes returned alongside an error are consumed before
// the error is inspected.
func feed(ha hash.Hash, r io.Reader, buf []byte) error {
	for {
		n, err := r.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			_, _ = ha.Write(buf[:n])
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}
