package timecalc_test

import (
	"testing"
	"time"

	"teamhours-be/internal/timecalc"
)

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-05-17 19:15:00", "2024-05-17 21:15:00", 120},
		{"2024-05-17 19:15:00", "2024-05-17 20:05:00", 50},
		{"2024-05-17 19:15:00", "2024-05-17 19:15:00", 0},
		{"2024-05-17 19:15:00", "2024-05-17 19:15:59", 0},
		{"2024-05-17 22:30:00", "2024-05-18 01:00:00", 150},
	}
	for _, tt := range tests {
		start, err := timecalc.ParseDateTime(tt.start, "")
		if err != nil {
			t.Fatalf("ParseDateTime(%q) error: %v", tt.start, err)
		}
		end, err := timecalc.ParseDateTime(tt.end, "")
		if err != nil {
			t.Fatalf("ParseDateTime(%q) error: %v", tt.end, err)
		}
		got := timecalc.ElapsedMinutes(start, end)
		if got != tt.want {
			t.Errorf("ElapsedMinutes(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00h00min"},
		{50, "00h50min"},
		{60, "01h00min"},
		{120, "02h00min"},
		{135, "02h15min"},
		{6005, "100h05min"},
	}
	for _, tt := range tests {
		got := timecalc.FormatMinutes(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseDateTimeWithZone(t *testing.T) {
	got, err := timecalc.ParseDateTime("2024-05-17 19:15:00", "Asia/Kolkata")
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}
	if got.Format("Z07:00") != "+05:30" {
		t.Errorf("offset = %s, want +05:30", got.Format("Z07:00"))
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	if _, err := timecalc.ParseDateTime("17/05/2024", ""); err == nil {
		t.Error("expected error for unparseable date time")
	}
	if _, err := timecalc.ParseDateTime("2024-05-17 19:15:00", "Mars/Olympus"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestParseMonth(t *testing.T) {
	got, err := timecalc.ParseMonth("2024-06")
	if err != nil {
		t.Fatalf("ParseMonth error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.June {
		t.Errorf("ParseMonth = %v, want 2024 June", got)
	}
	if _, err := timecalc.ParseMonth("June 2024"); err == nil {
		t.Error("expected error for unparseable month")
	}
}
