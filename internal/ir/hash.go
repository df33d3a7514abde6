package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainResult is the domain prefix for result fingerprints.
// It changes whenever ResultVersion does, so fingerprints from different
// record layouts never collide.
const DomainResult = "basel/result/v" + ResultVersion

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ResultFingerprint computes the content-addressed identity of an evaluation.
// Two runs that agree on n, method and every bit of the value share a
// fingerprint, whatever machine or language produced them.
func ResultFingerprint(n int64, method, bits string) (string, error) {
	obj := map[string]any{
		"n":      n,
		"method": method,
		"bits":   bits,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ResultFingerprint: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainResult, canonical), nil
}

// MustResultFingerprint is like ResultFingerprint but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustResultFingerprint(n int64, method, bits string) string {
	fp, err := ResultFingerprint(n, method, bits)
	if err != nil {
		panic(err)
	}
	return fp
}
