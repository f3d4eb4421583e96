package order

import (
	"regexp"
	"testing"
)

var trackingPattern = regexp.MustCompile(`^[0-9A-F]{16}$`)

func TestNewTrackingNumber_Format(t *testing.T) {
	got, err := NewTrackingNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !trackingPattern.MatchString(got) {
		t.Fatalf("tracking number %q is not 16 uppercase hex characters", got)
	}
}

func TestNewTrackingNumber_Varies(t *testing.T) {
	a, err := NewTrackingNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewTrackingNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("two consecutive tracking numbers are identical: %q", a)
	}
}
