package cache

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// urlHashLen is the number of characters of the encoded URL digest kept in
// cache file names.
const urlHashLen = 10

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashURL returns a short, file-name-safe identifier for url: the base64
// encoding of its hex SHA-1 digest, with '/' and '+' replaced, truncated to
// ten characters.
func HashURL(url string) string {
	sum := sha1.Sum([]byte(url))
	encoded := base64.StdEncoding.EncodeToString([]byte(hex.EncodeToString(sum[:])))
	encoded = strings.NewReplacer("/", "_", "+", "-").Replace(encoded)
	return encoded[:urlHashLen]
}

// StyleKey returns the cache key of the style file fetched from url.
func StyleKey(url string) string {
	return "config_" + HashURL(url) + ".txt"
}
