// Package report renders checksum outcomes, either as template-driven
// text lines with {digest}, {path}, {algorithm}, {kind} and {error}
// placeholders, or as one JSON object per line.
package report
