package clock

import (
	"testing"
	"time"
)

func TestSystemNowIsUTC(t *testing.T) {
	if loc := (System{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestFixedNow(t *testing.T) {
	at := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	if got := Fixed(at).Now(); !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}
