// Package textsig turns raw page text into the compact signals the graph
// engine works with: filtered tokens, ranked keywords and a 64-bit
// locality-sensitive fingerprint (simhash).
//
// Everything here is pure and allocation-light; callers own the text.
package textsig

import (
	"math/bits"
	"regexp"
	"sort"
	"strings"
)

// MaxHammingDistance is the distance returned when either fingerprint is
// absent, so missing fingerprints can never satisfy a distance threshold.
const MaxHammingDistance = 64

// minTokenLen is the shortest token worth keeping; anything below carries
// almost no signal in page titles and excerpts.
const minTokenLen = 4

// nonAlnumRegex collapses every run of non-alphanumeric characters into a
// single separator before splitting.
var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize splits text into lowercase tokens, dropping stopwords, web
// chrome vocabulary and garbage tokens (digit runs, hex ids, etc.).
// The returned slice preserves the order tokens appear in the text.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlnumRegex.ReplaceAllString(text, " ")

	var tokens []string
	for _, tok := range strings.Fields(text) {
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if isGarbageToken(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isGarbageToken rejects tokens that look like identifiers rather than
// words: pure digit runs, hex-looking strings, digit-heavy mixes and
// single-character repeats.
func isGarbageToken(tok string) bool {
	digits := 0
	hexChars := 0
	repeated := true
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c >= '0' && c <= '9' {
			digits++
			hexChars++
		} else if c >= 'a' && c <= 'f' {
			hexChars++
		}
		if c != tok[0] {
			repeated = false
		}
	}
	if digits == len(tok) {
		return true
	}
	// Hex ids need at least one digit, otherwise common words built from
	// a-f letters ("decade", "efface") would be dropped.
	if len(tok) >= 6 && hexChars == len(tok) && digits > 0 {
		return true
	}
	if digits*10 > len(tok)*4 { // digits exceed 40% of characters
		return true
	}
	return repeated
}

// ExtractKeywords returns up to max tokens ranked by term frequency.
// Ties keep first-occurrence order, so results are stable for a given text.
func ExtractKeywords(text string, max int) []string {
	if max <= 0 {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, tok := range Tokenize(text) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > max {
		order = order[:max]
	}
	return order
}

// ComputeFingerprint builds a 64-bit simhash over the token stream.
// Each token contributes two independent 32-bit hashes concatenated into a
// 64-bit value; every set bit votes +1 and every clear bit votes -1, and
// the final bit is set only where the cumulative vote is positive.
// Returns ok=false for an empty token slice.
func ComputeFingerprint(tokens []string) (fp uint64, ok bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	var votes [64]int
	for _, tok := range tokens {
		h := uint64(hashMul32(tok))<<32 | uint64(hashAdd32(tok))
		for i := 0; i < 64; i++ {
			if (h>>uint(i))&1 == 1 {
				votes[i]++
			} else {
				votes[i]--
			}
		}
	}
	var value uint64
	for i, v := range votes {
		if v > 0 {
			value |= 1 << uint(i)
		}
	}
	return value, true
}

// HammingDistance counts differing bits between two fingerprints.
// Absent fingerprints compare at MaxHammingDistance.
func HammingDistance(a, b *uint64) int {
	if a == nil || b == nil {
		return MaxHammingDistance
	}
	return bits.OnesCount64(*a ^ *b)
}

// hashMul32 is a multiplicative/XOR mix (FNV-1a).
func hashMul32(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// hashAdd32 is an additive/XOR mix (Jenkins one-at-a-time).
func hashAdd32(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}
