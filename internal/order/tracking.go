package order

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewTrackingNumber returns the human-facing order identifier: 8 random
// bytes, hex-encoded and uppercased, so 16 uppercase hex characters.
// It is independent of the database primary key and not guaranteed unique;
// collisions are accepted for a display-only code.
func NewTrackingNumber() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf[:])), nil
}
