package get_booking_stats

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Request модель запроса статистики
type Request struct {
	WorkspaceID int64
	From        *time.Time // Первый день тренда, по умолчанию окно заканчивается сегодня
	Days        int        // Длина окна, 0 - значение из конфигурации
}

// Response сводка по всем бронированиям и дневной тренд по окну
type Response struct {
	Summary domain.BookingStats
	From    time.Time
	Days    int
	Trend   []domain.TrendBucket
}
