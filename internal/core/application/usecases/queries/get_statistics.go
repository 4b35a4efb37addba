package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStatisticsQuery retrieves the admin reporting view. It carries no
// parameters.
type GetStatisticsQuery struct{}

// NewGetStatisticsQuery creates a statistics query.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{}
}

// StatusCountResponse is an order count for one status.
type StatusCountResponse struct {
	Status string
	Count  int
}

// RegionCountResponse is an order count for one customer region.
type RegionCountResponse struct {
	RegionName string
	Count      int
}

// MonthlyStatsResponse is order volume and revenue for one calendar month.
// Revenue counts delivered orders only.
type MonthlyStatsResponse struct {
	Month   string
	Count   int
	Revenue float64
}

// GetStatisticsQueryResponse aggregates the reporting view.
type GetStatisticsQueryResponse struct {
	OrdersByStatus []StatusCountResponse
	OrdersByRegion []RegionCountResponse
	Monthly        []MonthlyStatsResponse
}

// GetStatisticsQueryHandler builds the admin reporting view.
type GetStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(db *gorm.DB) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db}
}

// Handle returns order breakdowns by status and region plus a six month
// volume and revenue series, oldest month first.
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	_ GetStatisticsQuery,
) (GetStatisticsQueryResponse, error) {
	var response GetStatisticsQueryResponse

	byStatus, err := h.ordersByStatus(ctx)
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}
	response.OrdersByStatus = byStatus

	byRegion, err := h.ordersByRegion(ctx)
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}
	response.OrdersByRegion = byRegion

	monthly, err := h.monthlyStats(ctx)
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}
	response.Monthly = monthly

	return response, nil
}

func (h GetStatisticsQueryHandler) ordersByStatus(ctx context.Context) ([]StatusCountResponse, error) {
	counts := make([]StatusCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c StatusCountResponse
		if err = rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (h GetStatisticsQueryHandler) ordersByRegion(ctx context.Context) ([]RegionCountResponse, error) {
	counts := make([]RegionCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT r.name, COUNT(o.id)
		FROM regions r
		LEFT JOIN customers c ON c.region_id = r.id
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY r.name
		ORDER BY r.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c RegionCountResponse
		if err = rows.Scan(&c.RegionName, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (h GetStatisticsQueryHandler) monthlyStats(ctx context.Context) ([]MonthlyStatsResponse, error) {
	stats := make([]MonthlyStatsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', o.order_time), 'YYYY-MM'),
			COUNT(*),
			COALESCE(SUM(o.price) FILTER (WHERE o.status = 'Delivered'), 0)
		FROM orders o
		WHERE o.order_time >= DATE_TRUNC('month', NOW()) - INTERVAL '5 months'
		GROUP BY DATE_TRUNC('month', o.order_time)
		ORDER BY DATE_TRUNC('month', o.order_time)
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m MonthlyStatsResponse
		if err = rows.Scan(&m.Month, &m.Count, &m.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, m)
	}

	return stats, rows.Err()
}
