package reports

import (
	"strconv"
)

// PageSize is the fixed page size of the connections listing.
const PageSize = 10

type Status string

const (
	StatusAll  Status = "all"
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// ConnectionFilter is a validated filter set for the connections report.
type ConnectionFilter struct {
	Page   int
	Search string
	Status Status
	NasIP  string // empty means no concentrator filter
}

// NormalizeFilter converts raw query parameters into a ConnectionFilter.
// Normalization is deliberately permissive: a malformed page defaults to 1 and
// unrecognized status/nasip values fall back to "all". The back-office screens
// rely on this behavior.
func NormalizeFilter(page, search, status, nasip string) ConnectionFilter {
	f := ConnectionFilter{
		Page:   1,
		Search: search,
		Status: StatusAll,
	}

	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		f.Page = n
	}

	switch Status(status) {
	case StatusUp:
		f.Status = StatusUp
	case StatusDown:
		f.Status = StatusDown
	}

	if nasip != "" && nasip != "all" {
		f.NasIP = nasip
	}

	return f
}

// Offset returns the LIMIT/OFFSET start for the filter's page.
func (f ConnectionFilter) Offset() int {
	return (f.Page - 1) * PageSize
}
