package reports

import (
	"fmt"
	"strings"
)

// predicate is a single WHERE fragment owning its own parameters, so that
// placeholder and argument order stay aligned by construction no matter how
// fragments are combined.
type predicate struct {
	expr string
	args []interface{}
}

type predicateSet []predicate

// clause renders the set as a WHERE clause (or an empty string) plus the
// positional arguments in matching order.
func (ps predicateSet) clause() (string, []interface{}) {
	if len(ps) == 0 {
		return "", nil
	}
	exprs := make([]string, len(ps))
	var args []interface{}
	for i, p := range ps {
		exprs[i] = p.expr
		args = append(args, p.args...)
	}
	return " WHERE " + strings.Join(exprs, " AND "), args
}

// basePredicates builds the filters applied inside the latest-per-user CTE:
// username substring search and exact concentrator match. Substring matching
// is collation-dependent LIKE, as the admin screens expect.
func basePredicates(f ConnectionFilter) predicateSet {
	var ps predicateSet
	if f.Search != "" {
		ps = append(ps, predicate{expr: "username LIKE ?", args: []interface{}{"%" + f.Search + "%"}})
	}
	if f.NasIP != "" {
		ps = append(ps, predicate{expr: "nasipaddress = ?", args: []interface{}{f.NasIP}})
	}
	return ps
}

// statusPredicates builds the post-join status filter on the latest records.
func statusPredicates(f ConnectionFilter) predicateSet {
	switch f.Status {
	case StatusUp:
		return predicateSet{{expr: "r.acctstoptime IS NULL"}}
	case StatusDown:
		return predicateSet{{expr: "r.acctstoptime IS NOT NULL"}}
	}
	return nil
}

// latestCTE is the latest-session-per-user pattern: for each username, the
// record with the maximum start time within the base filters. Ties on
// (username, max start time) are broken by the listing's DISTINCT ON ordering,
// which keeps the highest radacctid.
const latestCTE = `WITH latest AS (
	SELECT username, MAX(acctstarttime) AS max_start
	FROM radacct%s
	GROUP BY username
)`

const latestJoin = `
FROM radacct r
JOIN latest l ON r.username = l.username AND r.acctstarttime = l.max_start`

// connectionsListSQL builds the paginated listing query, ordered by username
// for stable pagination.
func connectionsListSQL(f ConnectionFilter) (string, []interface{}) {
	baseWhere, baseArgs := basePredicates(f).clause()
	statusWhere, statusArgs := statusPredicates(f).clause()

	var b strings.Builder
	b.WriteString(fmt.Sprintf(latestCTE, baseWhere))
	b.WriteString(`
SELECT DISTINCT ON (r.username)
	r.radacctid, r.acctsessionid, r.username, r.nasipaddress,
	r.acctstarttime, r.acctstoptime, r.acctsessiontime,
	r.acctinputoctets, r.acctoutputoctets, r.acctterminatecause,
	r.framedipaddress, r.callingstationid`)
	b.WriteString(latestJoin)
	b.WriteString(statusWhere)
	b.WriteString(`
ORDER BY r.username ASC, r.radacctid DESC
LIMIT ? OFFSET ?`)

	args := append(baseArgs, statusArgs...)
	args = append(args, PageSize, f.Offset())
	return b.String(), args
}

// connectionsCountSQL counts the filtered listing with the identical
// predicates, so pagination metadata always matches the page contents.
func connectionsCountSQL(f ConnectionFilter) (string, []interface{}) {
	baseWhere, baseArgs := basePredicates(f).clause()
	statusWhere, statusArgs := statusPredicates(f).clause()

	var b strings.Builder
	b.WriteString(fmt.Sprintf(latestCTE, baseWhere))
	b.WriteString(`
SELECT COUNT(DISTINCT r.username)`)
	b.WriteString(latestJoin)
	b.WriteString(statusWhere)

	return b.String(), append(baseArgs, statusArgs...)
}

// concentratorCountsSQL groups the same filtered join by concentrator and
// counts distinct usernames per NAS IP address.
func concentratorCountsSQL(f ConnectionFilter) (string, []interface{}) {
	baseWhere, baseArgs := basePredicates(f).clause()
	statusWhere, statusArgs := statusPredicates(f).clause()

	var b strings.Builder
	b.WriteString(fmt.Sprintf(latestCTE, baseWhere))
	b.WriteString(`
SELECT r.nasipaddress, COUNT(DISTINCT r.username) AS user_count`)
	b.WriteString(latestJoin)
	b.WriteString(statusWhere)
	b.WriteString(`
GROUP BY r.nasipaddress
ORDER BY user_count DESC, r.nasipaddress ASC`)

	return b.String(), append(baseArgs, statusArgs...)
}

// concentratorStatsSQL is the standalone per-concentrator breakdown. Unlike
// the listing, "latest" here is keyed on the highest session id per user.
const concentratorStatsSQL = `WITH latest AS (
	SELECT username, MAX(radacctid) AS max_id
	FROM radacct
	GROUP BY username
)
SELECT r.nasipaddress, COUNT(DISTINCT r.username) AS user_count
FROM radacct r
JOIN latest l ON r.radacctid = l.max_id
GROUP BY r.nasipaddress
ORDER BY user_count DESC, r.nasipaddress ASC`

// consumptionSQL sums octet counters per calendar day over the trailing
// 30 days. Sums happen in SQL; unit conversion happens in the shaper.
const consumptionSQL = `SELECT
	TO_CHAR(DATE(acctstarttime), 'YYYY-MM-DD') AS date,
	COALESCE(SUM(acctinputoctets), 0) AS upload_octets,
	COALESCE(SUM(acctoutputoctets), 0) AS download_octets
FROM radacct
WHERE username = ? AND acctstarttime >= NOW() - INTERVAL '30 days'
GROUP BY DATE(acctstarttime)
ORDER BY DATE(acctstarttime) ASC`
