// Package ledger derives inventory depletion and staff occupancy from bookings.
// Functions here are pure: they return new values and never mutate their inputs.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// ErrBookingNotCompleted is returned when consumption is requested for a booking that is not completed
var ErrBookingNotCompleted = errors.New("consumption applies to completed bookings only")

// ConsumptionResult holds the items changed by one booking and the shortages it hit
type ConsumptionResult struct {
	Updated   []domain.InventoryItem
	Shortages []domain.StockShortage
}

// ApplyConsumption decrements stock for every rule of the booking's service type.
//
// Quantities are floored at zero. A rule that cannot be fully served yields a StockShortage
// warning and never an error, so completion is not blocked. The ledger does not know whether
// consumption was already applied; callers guard that with Booking.ConsumptionApplied.
func ApplyConsumption(
	b domain.Booking,
	rules []domain.ConsumptionRule,
	items []domain.InventoryItem,
	now time.Time,
) (ConsumptionResult, error) {
	if b.Status != domain.StatusCompleted {
		return ConsumptionResult{}, fmt.Errorf("%w: booking %d is %s", ErrBookingNotCompleted, b.ID, b.Status)
	}

	byID := make(map[int64]domain.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	result := ConsumptionResult{}
	touched := make([]int64, 0, len(rules))
	seen := make(map[int64]bool)

	for _, rule := range rules {
		if rule.ServiceTypeID != b.ServiceTypeID || rule.QuantityPerBooking <= 0 {
			continue
		}

		item, ok := byID[rule.InventoryItemID]
		if !ok {
			result.Shortages = append(result.Shortages, domain.StockShortage{
				ItemID:   rule.InventoryItemID,
				Required: rule.QuantityPerBooking,
			})
			continue
		}

		if item.Quantity < rule.QuantityPerBooking {
			result.Shortages = append(result.Shortages, domain.StockShortage{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Required:  rule.QuantityPerBooking,
				Available: item.Quantity,
			})
			item.Quantity = 0
		} else {
			item.Quantity -= rule.QuantityPerBooking
		}
		item.UpdatedAt = now
		byID[item.ID] = item

		if !seen[item.ID] {
			seen[item.ID] = true
			touched = append(touched, item.ID)
		}
	}

	result.Updated = make([]domain.InventoryItem, 0, len(touched))
	for _, id := range touched {
		result.Updated = append(result.Updated, byID[id])
	}

	return result, nil
}

// Restock adds amount units to the item
func Restock(item domain.InventoryItem, amount int, now time.Time) (domain.InventoryItem, error) {
	if amount <= 0 {
		return item, fmt.Errorf("%w: got %d", domain.ErrInvalidRestockAmount, amount)
	}

	restocked := now
	item.Quantity += amount
	item.LastRestocked = &restocked
	item.UpdatedAt = now
	return item, nil
}

// LowStock returns the items that are low or out of stock, keeping input order
func LowStock(items []domain.InventoryItem) []domain.InventoryItem {
	return filterByStatus(items, domain.StockLowStock, domain.StockOutOfStock)
}

// OutOfStock returns the items with zero quantity
func OutOfStock(items []domain.InventoryItem) []domain.InventoryItem {
	return filterByStatus(items, domain.StockOutOfStock)
}

// TotalValue sums quantity * unit cost
func TotalValue(items []domain.InventoryItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].Value()
	}
	return total
}

// StaffOccupancy aggregates capacity-holding bookings on date per assigned staff member.
// Unassigned bookings are skipped. The result is sorted by staff name.
func StaffOccupancy(bookings []domain.Booking, date time.Time) []domain.StaffOccupancy {
	byStaff := make(map[string]*domain.StaffOccupancy)

	for i := range bookings {
		b := &bookings[i]
		if b.AssignedStaff == nil || *b.AssignedStaff == "" || !b.OccupiesCapacity() || !b.IsOn(date) {
			continue
		}

		occ, ok := byStaff[*b.AssignedStaff]
		if !ok {
			occ = &domain.StaffOccupancy{Staff: *b.AssignedStaff}
			byStaff[*b.AssignedStaff] = occ
		}
		occ.Bookings++
		occ.BookedMinutes += b.Slot.DurationMinutes()
	}

	out := make([]domain.StaffOccupancy, 0, len(byStaff))
	for _, occ := range byStaff {
		out = append(out, *occ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Staff < out[j].Staff })
	return out
}

func filterByStatus(items []domain.InventoryItem, statuses ...domain.StockStatus) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0)
	for _, item := range items {
		status := item.Status()
		for _, s := range statuses {
			if status == s {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
