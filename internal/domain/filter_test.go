package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEntryFilter_MatchesText(t *testing.T) {
	entry := &JournalEntry{
		Description: "Venta S1 - Bodega Central",
		AccountCode: "121",
		Reference:   "F001-0042",
		Debit:       decimal.RequireFromString("118.00"),
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"bodega", true},        // description, case-insensitive
		{"121", true},           // account code
		{"cobrar", true},        // account label from registry
		{"f001", true},          // reference
		{"proveedor", false},    // no field matches
		{"VENTA", true},         // query case folded
	}

	for _, tt := range tests {
		got := EntryFilter{TextQuery: tt.query}.MatchesText(entry, "Cuentas por Cobrar")
		if got != tt.want {
			t.Errorf("MatchesText(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestPeriod_Filter(t *testing.T) {
	ref := time.Date(2025, 3, 20, 14, 30, 0, 0, time.UTC)

	month := PeriodThisMonth.Filter(ref)
	if month.DateFrom.Day() != 1 || month.DateFrom.Month() != time.March {
		t.Errorf("month lower bound = %v", month.DateFrom)
	}
	if month.DateTo.Day() != 31 || month.DateTo.Month() != time.March {
		t.Errorf("month upper bound = %v", month.DateTo)
	}

	year := PeriodThisYear.Filter(ref)
	if year.DateFrom.Month() != time.January || year.DateFrom.Day() != 1 {
		t.Errorf("year lower bound = %v", year.DateFrom)
	}
	if year.DateTo.Month() != time.December || year.DateTo.Day() != 31 {
		t.Errorf("year upper bound = %v", year.DateTo)
	}

	all := PeriodAll.Filter(ref)
	if all.DateFrom != nil || all.DateTo != nil {
		t.Errorf("all period should be unbounded: %+v", all)
	}
}

func TestPeriod_FilterFebruary(t *testing.T) {
	ref := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	month := PeriodThisMonth.Filter(ref)
	if month.DateTo.Day() != 29 {
		t.Errorf("leap february upper bound = %v, want day 29", month.DateTo)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"month", PeriodThisMonth},
		{"MONTH", PeriodThisMonth},
		{"year", PeriodThisYear},
		{"all", PeriodAll},
		{"", PeriodAll},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePeriod_Unknown(t *testing.T) {
	if _, err := ParsePeriod("quarter"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("ParsePeriod(quarter) error = %v, want ErrInvalidPeriod", err)
	}
}
