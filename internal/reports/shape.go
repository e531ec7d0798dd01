package reports

import (
	"math"
	"time"
)

// Connection is the wire representation of one latest-per-user accounting
// record. Timestamps are rendered as ISO-8601 UTC strings or null.
type Connection struct {
	RadAcctID          int64   `json:"radacctid"`
	AcctSessionID      string  `json:"acctsessionid"`
	Username           string  `json:"username"`
	NasIPAddress       string  `json:"nasipaddress"`
	AcctStartTime      *string `json:"acctstarttime"`
	AcctStopTime       *string `json:"acctstoptime"`
	AcctSessionTime    int     `json:"acctsessiontime"`
	AcctInputOctets    int64   `json:"acctinputoctets"`
	AcctOutputOctets   int64   `json:"acctoutputoctets"`
	AcctTerminateCause string  `json:"acctterminatecause"`
	FramedIPAddress    string  `json:"framedipaddress"`
	CallingStationID   string  `json:"callingstationid"`
}

// Pagination is the metadata block of the connections listing. It is computed
// from the same filtered count as the listing itself.
type Pagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int64 `json:"totalPages"`
	TotalRecords   int64 `json:"totalRecords"`
	RecordsPerPage int   `json:"recordsPerPage"`
}

// NewPagination derives pagination metadata for a filtered total.
func NewPagination(page int, totalRecords int64, perPage int) Pagination {
	totalPages := (totalRecords + int64(perPage) - 1) / int64(perPage)
	return Pagination{
		CurrentPage:    page,
		TotalPages:     totalPages,
		TotalRecords:   totalRecords,
		RecordsPerPage: perPage,
	}
}

// ConcentratorCount is a per-NAS breakdown row.
type ConcentratorCount struct {
	NasIPAddress string `gorm:"column:nasipaddress" json:"nasipaddress"`
	UserCount    int64  `gorm:"column:user_count" json:"user_count"`
}

// ConsumptionSample is one day of a user's traffic, in gigabytes.
type ConsumptionSample struct {
	Date       string  `json:"date"`
	UploadGB   float64 `json:"upload_gb"`
	DownloadGB float64 `json:"download_gb"`
}

// UserStats is the global counters block.
type UserStats struct {
	TotalUsers        int64 `json:"total_users"`
	ActiveConnections int64 `json:"active_connections"`
}

// connectionRow is the raw scan target for the listing queries.
type connectionRow struct {
	RadAcctID          int64      `gorm:"column:radacctid"`
	AcctSessionID      string     `gorm:"column:acctsessionid"`
	Username           string     `gorm:"column:username"`
	NasIPAddress       string     `gorm:"column:nasipaddress"`
	AcctStartTime      *time.Time `gorm:"column:acctstarttime"`
	AcctStopTime       *time.Time `gorm:"column:acctstoptime"`
	AcctSessionTime    int        `gorm:"column:acctsessiontime"`
	AcctInputOctets    int64      `gorm:"column:acctinputoctets"`
	AcctOutputOctets   int64      `gorm:"column:acctoutputoctets"`
	AcctTerminateCause string     `gorm:"column:acctterminatecause"`
	FramedIPAddress    string     `gorm:"column:framedipaddress"`
	CallingStationID   string     `gorm:"column:callingstationid"`
}

func shapeConnection(r connectionRow) Connection {
	return Connection{
		RadAcctID:          r.RadAcctID,
		AcctSessionID:      r.AcctSessionID,
		Username:           r.Username,
		NasIPAddress:       r.NasIPAddress,
		AcctStartTime:      formatTime(r.AcctStartTime),
		AcctStopTime:       formatTime(r.AcctStopTime),
		AcctSessionTime:    r.AcctSessionTime,
		AcctInputOctets:    r.AcctInputOctets,
		AcctOutputOctets:   r.AcctOutputOctets,
		AcctTerminateCause: r.AcctTerminateCause,
		FramedIPAddress:    r.FramedIPAddress,
		CallingStationID:   r.CallingStationID,
	}
}

// formatTime renders a timestamp as ISO-8601 in UTC, or nil for null/zero
// source values.
func formatTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// octetsToGB converts a byte counter to gigabytes rounded to 2 decimals.
func octetsToGB(octets int64) float64 {
	gb := float64(octets) / float64(1<<30)
	return math.Round(gb*100) / 100
}
