package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

func TestDate_DaysUntil_CalendarBoundaries(t *testing.T) {
	// The difference must depend only on the calendar dates, not on the
	// time of day: a product expiring today reads 0 even late in the evening.
	tests := []struct {
		name string
		date domain.Date
		now  time.Time
		want int
	}{
		{
			name: "same day, morning",
			date: domain.NewDate(2026, time.March, 10),
			now:  time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same day, just before midnight",
			date: domain.NewDate(2026, time.March, 10),
			now:  time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "tomorrow, late evening",
			date: domain.NewDate(2026, time.March, 11),
			now:  time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "yesterday",
			date: domain.NewDate(2026, time.March, 9),
			now:  time.Date(2026, time.March, 10, 0, 30, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "across a month boundary",
			date: domain.NewDate(2026, time.April, 2),
			now:  time.Date(2026, time.March, 30, 12, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.date.DaysUntil(tc.now); got != tc.want {
				t.Fatalf("DaysUntil = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Fatalf("expected 2026-08-30, got %s", d)
	}

	if _, err := domain.ParseDate("30.08.2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDate_JSON(t *testing.T) {
	type record struct {
		Exp domain.Date `json:"expiration_date"`
	}

	raw, err := json.Marshal(record{Exp: domain.NewDate(2026, time.August, 30)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `{"expiration_date":"2026-08-30"}` {
		t.Fatalf("unexpected JSON: %s", raw)
	}

	var decoded record
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Exp.Compare(domain.NewDate(2026, time.August, 30)) != 0 {
		t.Fatalf("round trip mismatch: %s", decoded.Exp)
	}
}
