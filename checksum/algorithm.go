package checksum

import (
	"crypto/md5"  //nolint:gosec // offered for legacy checksums only
	"crypto/sha1" //nolint:gosec // offered for legacy checksums only
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a hash function known to the registry.
type Algorithm string

// Supported algorithms.
const (
	SHA256     Algorithm = "sha256"
	SHA224     Algorithm = "sha224"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_256 Algorithm = "sha512/256" //nolint:revive // mirrors crypto/sha512
	SHA1       Algorithm = "sha1"
	MD5        Algorithm = "md5"
	SHA3_256   Algorithm = "sha3-256" //nolint:revive // mirrors x/crypto/sha3
	SHA3_512   Algorithm = "sha3-512" //nolint:revive // mirrors x/crypto/sha3
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE2s256 Algorithm = "blake2s-256"
)

var registry = map[Algorithm]func() hash.Hash{
	SHA256:     sha256.New,
	SHA224:     sha256.New224,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA512_256: sha512.New512_256,
	SHA1:       sha1.New,
	MD5:        md5.New,
	SHA3_256:   func() hash.Hash { return sha3.New256() },
	SHA3_512:   func() hash.Hash { return sha3.New512() },
	BLAKE2b256: mustUnkeyed(blake2b.New256),
	BLAKE2b512: mustUnkeyed(blake2b.New512),
	BLAKE2s256: mustUnkeyed(blake2s.New256),
}

// mustUnkeyed adapts a keyed constructor. A nil key never fails.
func mustUnkeyed(
	fn func(key []byte) (hash.Hash, error),
) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic("checksum: unkeyed hash constructor failed: " + err.Error())
		}

		return h
	}
}

var separators = strings.NewReplacer("-", "", "_", "", "/", "")

// Normalize folds spelling variants such as "SHA-256", "SHA3_256" or
// "sha512-256" onto the registry name. Unknown names are returned
// lower-cased.
func Normalize(name string) Algorithm {
	n := strings.ToLower(strings.TrimSpace(name))
	if _, ok := registry[Algorithm(n)]; ok {
		return Algorithm(n)
	}

	// "sha-256" -> "sha256", "sha3_256" -> "sha3-256",
	// "sha512-256" -> "sha512/256"
	compact := separators.Replace(n)
	for alg := range registry {
		if separators.Replace(string(alg)) == compact {
			return alg
		}
	}

	return Algorithm(n)
}

// Available reports whether the registry can build a hash for a.
func (a Algorithm) Available() bool {
	_, ok := registry[a]
	return ok
}

// Size returns the digest length in bytes, or 0 for an unknown
// algorithm.
func (a Algorithm) Size() int {
	fn, ok := registry[a]
	if !ok {
		return 0
	}

	return fn().Size()
}

func (a Algorithm) String() string {
	return string(a)
}

// newHash returns a fresh accumulator for a.
func (a Algorithm) newHash() (hash.Hash, bool) {
	fn, ok := registry[a]
	if !ok {
		return nil, false
	}

	return fn(), true
}

// Algorithms lists the registered algorithms in name order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(registry))
	for alg := range registry {
		algs = append(algs, alg)
	}

	slices.Sort(algs)

	return algs
}
