package reports

import (
	"fmt"
	"log"

	"github.com/fibranet/backoffice/internal/database"
	"github.com/fibranet/backoffice/internal/models"
)

// Service runs the accounting report queries. It is purely read-only; the
// radacct table is mutated only by the RADIUS accounting subsystem.
type Service struct {
	conn *database.Conn
}

func NewService(conn *database.Conn) *Service {
	return &Service{conn: conn}
}

// ConnectionsPage is the full payload of the connections listing.
type ConnectionsPage struct {
	Data       []Connection        `json:"data"`
	UserCounts []ConcentratorCount `json:"userCounts"`
	Pagination Pagination          `json:"pagination"`
}

// Connections returns the latest session per user within the filter, one page
// at a time, plus the per-concentrator breakdown of the same filtered set.
// The three queries run sequentially on the shared pool; there is no snapshot
// guarantee across them.
func (s *Service) Connections(f ConnectionFilter) (*ConnectionsPage, error) {
	countSQL, countArgs := connectionsCountSQL(f)
	var total int64
	if err := s.conn.DB.Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return nil, fmt.Errorf("count connections: %w", err)
	}

	listSQL, listArgs := connectionsListSQL(f)
	var rows []connectionRow
	if err := s.conn.DB.Raw(listSQL, listArgs...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	countsSQL, countsArgs := concentratorCountsSQL(f)
	userCounts := make([]ConcentratorCount, 0)
	if err := s.conn.DB.Raw(countsSQL, countsArgs...).Scan(&userCounts).Error; err != nil {
		return nil, fmt.Errorf("count users per concentrator: %w", err)
	}

	data := make([]Connection, len(rows))
	for i, r := range rows {
		data[i] = shapeConnection(r)
	}

	return &ConnectionsPage{
		Data:       data,
		UserCounts: userCounts,
		Pagination: NewPagination(f.Page, total, PageSize),
	}, nil
}

// ConcentratorStats returns users-per-concentrator keyed on each user's most
// recent session id. Results are cached briefly; the cache is advisory and
// failures fall through to the database.
func (s *Service) ConcentratorStats() ([]ConcentratorCount, error) {
	var cached []ConcentratorCount
	if err := s.conn.CacheGet(database.CacheKeyConcentratorStats, &cached); err == nil {
		return cached, nil
	}

	stats := make([]ConcentratorCount, 0)
	if err := s.conn.DB.Raw(concentratorStatsSQL).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("concentrator stats: %w", err)
	}

	if err := s.conn.CacheSet(database.CacheKeyConcentratorStats, stats, database.CacheTTLReports); err != nil {
		log.Printf("Failed to cache concentrator stats: %v", err)
	}
	return stats, nil
}

// UserStats returns the distinct user count and the number of sessions still
// up. Cached the same way as ConcentratorStats.
func (s *Service) UserStats() (*UserStats, error) {
	var cached UserStats
	if err := s.conn.CacheGet(database.CacheKeyUserStats, &cached); err == nil {
		return &cached, nil
	}

	var stats UserStats
	if err := s.conn.DB.Model(&models.RadAcct{}).
		Distinct("username").
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := s.conn.DB.Model(&models.RadAcct{}).
		Where("acctstoptime IS NULL").
		Count(&stats.ActiveConnections).Error; err != nil {
		return nil, fmt.Errorf("count active connections: %w", err)
	}

	if err := s.conn.CacheSet(database.CacheKeyUserStats, stats, database.CacheTTLReports); err != nil {
		log.Printf("Failed to cache user stats: %v", err)
	}
	return &stats, nil
}

// UserConsumption returns per-day traffic totals for the trailing 30 days,
// converted to gigabytes after summing.
func (s *Service) UserConsumption(username string) ([]ConsumptionSample, error) {
	var rows []struct {
		Date           string `gorm:"column:date"`
		UploadOctets   int64  `gorm:"column:upload_octets"`
		DownloadOctets int64  `gorm:"column:download_octets"`
	}
	if err := s.conn.DB.Raw(consumptionSQL, username).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("user consumption: %w", err)
	}

	samples := make([]ConsumptionSample, len(rows))
	for i, r := range rows {
		samples[i] = ConsumptionSample{
			Date:       r.Date,
			UploadGB:   octetsToGB(r.UploadOctets),
			DownloadGB: octetsToGB(r.DownloadOctets),
		}
	}
	return samples, nil
}

// UserHistory returns the user's last 10 sessions by start time.
func (s *Service) UserHistory(username string) ([]Connection, error) {
	var records []models.RadAcct
	if err := s.conn.DB.
		Where("username = ?", username).
		Order("acctstarttime DESC").
		Limit(10).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("user history: %w", err)
	}
	return shapeRecords(records), nil
}

// UserRecords returns every accounting record for a user, newest first. Used
// by the debug endpoint.
func (s *Service) UserRecords(username string) ([]Connection, error) {
	var records []models.RadAcct
	if err := s.conn.DB.
		Where("username = ?", username).
		Order("acctstarttime DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("user records: %w", err)
	}
	return shapeRecords(records), nil
}

func shapeRecords(records []models.RadAcct) []Connection {
	out := make([]Connection, len(records))
	for i, r := range records {
		out[i] = shapeConnection(connectionRow{
			RadAcctID:          r.RadAcctID,
			AcctSessionID:      r.AcctSessionID,
			Username:           r.Username,
			NasIPAddress:       r.NasIPAddress,
			AcctStartTime:      r.AcctStartTime,
			AcctStopTime:       r.AcctStopTime,
			AcctSessionTime:    r.AcctSessionTime,
			AcctInputOctets:    r.AcctInputOctets,
			AcctOutputOctets:   r.AcctOutputOctets,
			AcctTerminateCause: r.AcctTerminateCause,
			FramedIPAddress:    r.FramedIPAddress,
			CallingStationID:   r.CallingStationID,
		})
	}
	return out
}
