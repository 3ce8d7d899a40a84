package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	WorkspaceID   int64     // ID рабочего пространства
	ServiceTypeID int64     // ID типа услуги
	Date          time.Time // Дата (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	WorkspaceID     int64
	ServiceTypeID   int64
	ServiceName     string
	Date            time.Time
	DurationMinutes int
	Capacity        int
	Slots           []domain.AvailableSlot // Отсортированы по времени начала
}
