package reports

import (
	"testing"
	"time"
)

func TestNewPagination(t *testing.T) {
	t.Run("rounds pages up", func(t *testing.T) {
		p := NewPagination(1, 25, 10)

		if p.TotalPages != 3 {
			t.Errorf("expected 3 pages for 25 records, got %d", p.TotalPages)
		}
		if p.TotalRecords != 25 {
			t.Errorf("expected 25 records, got %d", p.TotalRecords)
		}
		if p.RecordsPerPage != 10 {
			t.Errorf("expected 10 per page, got %d", p.RecordsPerPage)
		}
	})

	t.Run("exact multiple", func(t *testing.T) {
		if p := NewPagination(2, 30, 10); p.TotalPages != 3 {
			t.Errorf("expected 3 pages for 30 records, got %d", p.TotalPages)
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		p := NewPagination(1, 0, 10)
		if p.TotalPages != 0 {
			t.Errorf("expected 0 pages, got %d", p.TotalPages)
		}
	})

	t.Run("page beyond total is reported as requested", func(t *testing.T) {
		p := NewPagination(9, 12, 10)
		if p.CurrentPage != 9 {
			t.Errorf("expected currentPage 9, got %d", p.CurrentPage)
		}
		if p.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", p.TotalPages)
		}
	})
}

func TestFormatTime(t *testing.T) {
	t.Run("nil stays null", func(t *testing.T) {
		if got := formatTime(nil); got != nil {
			t.Errorf("expected nil, got %v", *got)
		}
	})

	t.Run("zero value degrades to null", func(t *testing.T) {
		var zero time.Time
		if got := formatTime(&zero); got != nil {
			t.Errorf("expected nil for zero time, got %v", *got)
		}
	})

	t.Run("renders ISO-8601 in UTC", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*3600)
		ts := time.Date(2024, 5, 10, 21, 30, 0, 0, loc)

		got := formatTime(&ts)
		if got == nil {
			t.Fatal("expected formatted time, got nil")
		}
		if *got != "2024-05-11T00:30:00Z" {
			t.Errorf("expected UTC rendering, got %s", *got)
		}
	})
}

func TestOctetsToGB(t *testing.T) {
	cases := []struct {
		name   string
		octets int64
		want   float64
	}{
		{"zero", 0, 0},
		{"one gibibyte", 1 << 30, 1.0},
		{"two gibibytes summed before converting", 2 << 30, 2.0},
		{"rounds to two decimals", 1610612736, 1.5},
		{"small values round down", 5242880, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := octetsToGB(tc.octets); got != tc.want {
				t.Errorf("octetsToGB(%d) = %v, want %v", tc.octets, got, tc.want)
			}
		})
	}
}

func TestShapeConnection(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	row := connectionRow{
		RadAcctID:        42,
		Username:         "joao",
		NasIPAddress:     "10.0.0.1",
		AcctStartTime:    &start,
		AcctStopTime:     nil,
		AcctInputOctets:  1024,
		AcctOutputOctets: 2048,
		FramedIPAddress:  "100.64.0.7",
	}

	conn := shapeConnection(row)

	if conn.RadAcctID != 42 || conn.Username != "joao" {
		t.Errorf("identity fields not mapped: %+v", conn)
	}
	if conn.AcctStartTime == nil || *conn.AcctStartTime != "2024-05-01T12:00:00Z" {
		t.Errorf("start time not normalized: %v", conn.AcctStartTime)
	}
	if conn.AcctStopTime != nil {
		t.Error("open session must keep null stop time")
	}
	if conn.AcctInputOctets != 1024 || conn.AcctOutputOctets != 2048 {
		t.Errorf("octet counters not mapped: %+v", conn)
	}
}
