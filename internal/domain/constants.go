package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultTimezone               = "UTC"
	DefaultUpcomingLimit          = 5
	DefaultTrendDays              = 7
)

// Business validation constants
const (
	MinutesPerDay          = 1440
	MinSlotGranularity     = 5
	MaxSlotGranularity     = 240
	MinDurationMinutes     = 5
	MaxDurationMinutes     = MinutesPerDay
	MinCapacity            = 1
	MaxCapacity            = 100
	MaxNameLength          = 200
	MaxEmailLength         = 320
	MaxPhoneLength         = 50
	MaxNotesLength         = 500
	MaxTrendDays           = 90
	MaxConsumptionQuantity = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
