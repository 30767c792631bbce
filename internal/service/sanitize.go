package service

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText strips HTML tag sequences and any leftover angle brackets,
// then trims surrounding whitespace. Stored free-text fields must never
// contain '<' or '>'.
func SanitizeText(input string) string {
	cleaned := htmlTagPattern.ReplaceAllString(input, "")
	cleaned = strings.NewReplacer("<", "", ">", "").Replace(cleaned)
	return strings.TrimSpace(cleaned)
}

// HashClientIP maps a caller address to a short deterministic bucket key.
// The hash only needs to be stable and non-reversible, not cryptographic;
// it is stored in place of the address itself.
func HashClientIP(ip string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ip))
	return fmt.Sprintf("%08x", h.Sum32())
}
