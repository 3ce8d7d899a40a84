package get_booking_stats

import (
	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	getStats "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_booking_stats"
)

type SummaryResponse struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	OccupancyRate float64        `json:"occupancyRate"`
}

type TrendBucketResponse struct {
	Date      string `json:"date"`
	Confirmed int    `json:"confirmed"`
	Completed int    `json:"completed"`
	NoShow    int    `json:"noShow"`
}

type StatsResponse struct {
	Summary SummaryResponse       `json:"summary"`
	From    string                `json:"from"`
	Days    int                   `json:"days"`
	Trend   []TrendBucketResponse `json:"trend"`
}

func FromUseCaseResponse(resp *getStats.Response) *StatsResponse {
	byStatus := make(map[string]int, len(domain.AllStatuses))
	// все статусы присутствуют в ответе, даже нулевые
	for _, s := range domain.AllStatuses {
		byStatus[string(s)] = resp.Summary.ByStatus[s]
	}

	trend := make([]TrendBucketResponse, 0, len(resp.Trend))
	for _, b := range resp.Trend {
		trend = append(trend, TrendBucketResponse{
			Date:      b.Date.Format(domain.DateFormat),
			Confirmed: b.Confirmed,
			Completed: b.Completed,
			NoShow:    b.NoShow,
		})
	}

	return &StatsResponse{
		Summary: SummaryResponse{
			Total:         resp.Summary.Total,
			ByStatus:      byStatus,
			OccupancyRate: resp.Summary.OccupancyRate,
		},
		From:  resp.From.Format(domain.DateFormat),
		Days:  resp.Days,
		Trend: trend,
	}
}
