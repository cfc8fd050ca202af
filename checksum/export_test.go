package checksum

import "io"

// Exported aliases for testing unexported helpers from the
// checksum_test package.

// FeedForTest exposes feed.
var FeedForTest = feed

// NewEngineWithOpenerForTest builds an Engine whose files are opened
// by open instead of os.Open.
func NewEngineWithOpenerForTest(
	bufferSize int,
	open func(name string) (io.ReadCloser, error),
) *Engine {
	return &Engine{BufferSize: bufferSize, open: open}
}
