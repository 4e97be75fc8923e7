// Package id provides identifier generation for mock resources.
// IDs derived from caller input are deterministic so that repeated requests
// with the same input produce the same identifiers.
package id

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// OTPRequest derives a deterministic OTP request id from the subject it was
// issued for (an email address or phone number). The same subject always
// yields the same id, which lets clients correlate issue/verify round-trips.
func OTPRequest(subject string) string {
	return "otpreq_" + hexPrefix([]byte(subject), 12)
}

// User derives a deterministic pseudo user id from an email address.
func User(email string) string {
	sum := sha256.Sum256([]byte(email))
	return "usr_" + hex.EncodeToString(sum[:])[:12]
}

// Room formats a sequential per-session room id, e.g. "rm_001".
func Room(seq int) string {
	return fmt.Sprintf("rm_%03d", seq)
}

// hexPrefix hex-encodes b and returns the first n characters, or the full
// encoding when it is shorter than n.
func hexPrefix(b []byte, n int) string {
	s := hex.EncodeToString(b)
	if len(s) > n {
		return s[:n]
	}
	return s
}
