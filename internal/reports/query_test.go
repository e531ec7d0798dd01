package reports

import (
	"strings"
	"testing"
)

func placeholders(sql string) int {
	return strings.Count(sql, "?")
}

func TestConnectionsListSQL(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		sql, args := connectionsListSQL(ConnectionFilter{Page: 1, Status: StatusAll})

		if strings.Contains(sql, "WHERE username LIKE") {
			t.Error("unexpected search predicate")
		}
		if placeholders(sql) != len(args) {
			t.Fatalf("placeholder/arg mismatch: %d placeholders, %d args", placeholders(sql), len(args))
		}
		if len(args) != 2 || args[0] != PageSize || args[1] != 0 {
			t.Errorf("expected [limit, offset] args, got %v", args)
		}
		if !strings.Contains(sql, "ORDER BY r.username ASC, r.radacctid DESC") {
			t.Error("expected stable username ordering with id tie-break")
		}
	})

	t.Run("search and nasip filter the CTE", func(t *testing.T) {
		sql, args := connectionsListSQL(ConnectionFilter{
			Page:   3,
			Search: "jo",
			NasIP:  "10.0.0.1",
			Status: StatusAll,
		})

		if !strings.Contains(sql, "username LIKE ? AND nasipaddress = ?") {
			t.Error("expected search and nasip predicates joined with AND")
		}
		if placeholders(sql) != len(args) {
			t.Fatalf("placeholder/arg mismatch: %d placeholders, %d args", placeholders(sql), len(args))
		}
		want := []interface{}{"%jo%", "10.0.0.1", PageSize, 20}
		if len(args) != len(want) {
			t.Fatalf("expected %d args, got %d", len(want), len(args))
		}
		for i := range want {
			if args[i] != want[i] {
				t.Errorf("arg %d: expected %v, got %v", i, want[i], args[i])
			}
		}
	})

	t.Run("status up is a post-join predicate without args", func(t *testing.T) {
		sql, args := connectionsListSQL(ConnectionFilter{Page: 1, Status: StatusUp})

		if !strings.Contains(sql, "r.acctstoptime IS NULL") {
			t.Error("expected up predicate on joined rows")
		}
		if len(args) != 2 {
			t.Errorf("status must not add positional args, got %v", args)
		}
	})

	t.Run("status down", func(t *testing.T) {
		sql, _ := connectionsListSQL(ConnectionFilter{Page: 1, Status: StatusDown})
		if !strings.Contains(sql, "r.acctstoptime IS NOT NULL") {
			t.Error("expected down predicate on joined rows")
		}
	})
}

func TestConnectionsCountSQLMatchesListing(t *testing.T) {
	// The count query must apply the identical predicates as the listing or
	// pagination metadata drifts from the page contents.
	f := ConnectionFilter{Page: 5, Search: "ana", NasIP: "10.1.1.1", Status: StatusUp}

	listSQL, listArgs := connectionsListSQL(f)
	countSQL, countArgs := connectionsCountSQL(f)

	for _, fragment := range []string{
		"username LIKE ? AND nasipaddress = ?",
		"r.acctstoptime IS NULL",
		"JOIN latest l ON r.username = l.username AND r.acctstarttime = l.max_start",
	} {
		if !strings.Contains(listSQL, fragment) {
			t.Errorf("listing missing fragment %q", fragment)
		}
		if !strings.Contains(countSQL, fragment) {
			t.Errorf("count missing fragment %q", fragment)
		}
	}

	// Count args are the listing args minus limit/offset.
	if len(countArgs) != len(listArgs)-2 {
		t.Fatalf("expected count args = list args - 2, got %d vs %d", len(countArgs), len(listArgs))
	}
	for i := range countArgs {
		if countArgs[i] != listArgs[i] {
			t.Errorf("arg %d differs: %v vs %v", i, countArgs[i], listArgs[i])
		}
	}
	if strings.Contains(countSQL, "LIMIT") {
		t.Error("count query must not be paginated")
	}
}

func TestConcentratorCountsSQL(t *testing.T) {
	sql, args := concentratorCountsSQL(ConnectionFilter{Status: StatusDown, Search: "x"})

	if !strings.Contains(sql, "GROUP BY r.nasipaddress") {
		t.Error("expected grouping by concentrator")
	}
	if !strings.Contains(sql, "COUNT(DISTINCT r.username)") {
		t.Error("expected distinct username count")
	}
	if placeholders(sql) != len(args) {
		t.Errorf("placeholder/arg mismatch: %d placeholders, %d args", placeholders(sql), len(args))
	}
}

func TestStaticReportSQL(t *testing.T) {
	t.Run("concentrator stats keys latest on session id", func(t *testing.T) {
		if !strings.Contains(concentratorStatsSQL, "MAX(radacctid)") {
			t.Error("expected MAX(radacctid) latest-per-user key")
		}
		if !strings.Contains(concentratorStatsSQL, "COUNT(DISTINCT r.username)") {
			t.Error("expected distinct username count")
		}
	})

	t.Run("consumption sums over a 30 day window", func(t *testing.T) {
		if !strings.Contains(consumptionSQL, "INTERVAL '30 days'") {
			t.Error("expected trailing 30 day window")
		}
		if !strings.Contains(consumptionSQL, "SUM(acctinputoctets)") ||
			!strings.Contains(consumptionSQL, "SUM(acctoutputoctets)") {
			t.Error("expected octet sums in SQL, conversion happens in the shaper")
		}
		if placeholders(consumptionSQL) != 1 {
			t.Errorf("expected a single username placeholder, got %d", placeholders(consumptionSQL))
		}
	})
}
