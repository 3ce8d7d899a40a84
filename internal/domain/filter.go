package domain

import "time"

// BookingsFilter narrows a booking listing. Nil fields are not applied.
type BookingsFilter struct {
	Statuses []BookingStatus
	Query    *string // case-insensitive match on customer name, email, phone or service name
	Date     *time.Time
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    *int
}

// InventoryFilter narrows an inventory listing
type InventoryFilter struct {
	Query    *string // case-insensitive match on name, sku, category or supplier
	Category *string
}
