package checksum

import "encoding/hex"

// EncodeHex renders b as lowercase hexadecimal, two characters per byte
// with no separators. Leading zero nibbles are kept, so the result is
// always exactly 2*len(b) characters long.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
