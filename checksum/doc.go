// Package checksum streams files through a cryptographic hash in
// fixed-size chunks and reports the digest as lowercase hexadecimal.
// Every attempt yields an immutable Outcome holding either the hex
// digest or a categorized *Error; Compute never panics and never returns
// a bare error. GenerateSHA256 is the convenience entry point for the
// 256-bit SHA-2 digest.
package checksum
