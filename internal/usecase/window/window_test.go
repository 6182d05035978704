package window

import (
	"testing"
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

func businessTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, domain.BusinessLocation)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		menuDate string
		today    string
		expected DateClass
	}{
		{"same day", "2024-06-01", "2024-06-01", DateToday},
		{"one day before", "2024-05-31", "2024-06-01", DateYesterday},
		{"two days before", "2024-05-30", "2024-06-01", DatePast},
		{"far past", "2023-01-15", "2024-06-01", DatePast},
		{"next day", "2024-06-02", "2024-06-01", DateFuture},
		{"far future", "2024-07-10", "2024-06-01", DateFuture},
		{"yesterday across month boundary", "2024-04-30", "2024-05-01", DateYesterday},
		{"yesterday across year boundary", "2023-12-31", "2024-01-01", DateYesterday},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			class, err := Classify(test.menuDate, test.today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if class != test.expected {
				t.Fatalf("expected %s, got %s", test.expected, class)
			}
		})
	}
}

func TestClassifyInvalidDate(t *testing.T) {
	if _, err := Classify("06/01/2024", "2024-06-01"); err == nil {
		t.Fatal("expected error for malformed menu date")
	}
	if _, err := Classify("2024-06-01", "not-a-date"); err == nil {
		t.Fatal("expected error for malformed today date")
	}
}

func TestIsOrderingClosed(t *testing.T) {
	tests := []struct {
		name     string
		menuDate string
		cutoff   domain.TimeOfDay
		now      string
		closed   bool
	}{
		{"today before cutoff", "2024-06-01", "15:00", "2024-06-01 14:59", false},
		{"today after cutoff", "2024-06-01", "15:00", "2024-06-01 15:01", true},
		{"today exactly at cutoff stays open", "2024-06-01", "15:00", "2024-06-01 15:00", false},
		{"yesterday closed even before cutoff", "2024-05-31", "23:59", "2024-06-01 08:00", true},
		{"past closed regardless of cutoff", "2024-05-20", "23:59", "2024-06-01 08:00", true},
		{"tomorrow open even after cutoff", "2024-06-02", "15:00", "2024-06-01 23:30", false},
		{"far future open", "2024-06-20", "00:00", "2024-06-01 23:30", false},
		{"non zero-padded cutoff", "2024-06-01", "9:30", "2024-06-01 09:29", false},
		{"non zero-padded cutoff exceeded", "2024-06-01", "9:30", "2024-06-01 09:31", true},
		{"unparseable cutoff falls back to 15:00", "2024-06-01", "soon", "2024-06-01 14:59", false},
		{"unparseable cutoff falls back to 15:00 closed", "2024-06-01", "soon", "2024-06-01 15:01", true},
		{"midnight cutoff closes all day", "2024-06-01", "00:00", "2024-06-01 00:01", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			closed, err := IsOrderingClosed(test.menuDate, test.cutoff, businessTime(t, test.now))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if closed != test.closed {
				t.Fatalf("expected closed=%v, got %v", test.closed, closed)
			}
		})
	}
}

// A UTC instant late in the day is already the next calendar date in UTC+9.
// The evaluator must decide on the business-local date, not the UTC one.
func TestIsOrderingClosedBusinessZoneShift(t *testing.T) {
	// 2024-06-01 16:30 UTC == 2024-06-02 01:30 KST.
	now := time.Date(2024, 6, 1, 16, 30, 0, 0, time.UTC)

	closed, err := IsOrderingClosed("2024-06-01", "15:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closed {
		t.Fatal("sheet dated 2024-06-01 should be closed once KST has rolled to 06-02")
	}

	closed, err = IsOrderingClosed("2024-06-02", "15:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed {
		t.Fatal("sheet dated 2024-06-02 should be open at 01:30 KST on 06-02")
	}
}

func TestIsOrderingClosedInvalidMenuDate(t *testing.T) {
	closed, err := IsOrderingClosed("garbage", "15:00", businessTime(t, "2024-06-01 10:00"))
	if err == nil {
		t.Fatal("expected error for malformed menu date")
	}
	if !closed {
		t.Fatal("malformed dates must fail closed")
	}
}
