package validators

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-09-15"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}

	for _, bad := range []string{"15/09/2026", "2026-13-01", "2026-02-30", "ayer", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("%q should be rejected", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("10:30")
	if err != nil || got != "10:30:00" {
		t.Fatalf("expected 10:30:00, got %q %v", got, err)
	}

	got, err = ParseClock("23:59:59")
	if err != nil || got != "23:59:59" {
		t.Fatalf("expected 23:59:59, got %q %v", got, err)
	}

	for _, bad := range []string{"25:00", "10:61", "mediodía", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("%q should be rejected", bad)
		}
	}
}
