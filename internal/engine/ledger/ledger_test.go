package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/ptr"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

var now = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func completedBooking() domain.Booking {
	return domain.Booking{ID: 10, ServiceTypeID: 1, Status: domain.StatusCompleted}
}

func TestApplyConsumption_InsufficientStockFloorsAtZero(t *testing.T) {
	items := []domain.InventoryItem{{ID: 100, Name: "X", Quantity: 1, ReorderLevel: 2}}
	rules := []domain.ConsumptionRule{{ServiceTypeID: 1, InventoryItemID: 100, QuantityPerBooking: 2}}

	res, err := ApplyConsumption(completedBooking(), rules, items, now)

	require.NoError(t, err)
	require.Len(t, res.Updated, 1)
	assert.Equal(t, 0, res.Updated[0].Quantity)
	assert.Equal(t, domain.StockOutOfStock, res.Updated[0].Status())

	require.Len(t, res.Shortages, 1)
	assert.True(t, errors.Is(res.Shortages[0], domain.ErrInsufficientStock))
	assert.Equal(t, 2, res.Shortages[0].Required)
	assert.Equal(t, 1, res.Shortages[0].Available)

	// входные данные не меняются
	assert.Equal(t, 1, items[0].Quantity)
}

func TestApplyConsumption_Decrements(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: 100, Name: "gloves", Quantity: 10, ReorderLevel: 3},
		{ID: 200, Name: "towels", Quantity: 4, ReorderLevel: 3},
		{ID: 300, Name: "unrelated", Quantity: 4},
	}
	rules := []domain.ConsumptionRule{
		{ServiceTypeID: 1, InventoryItemID: 100, QuantityPerBooking: 2},
		{ServiceTypeID: 1, InventoryItemID: 200, QuantityPerBooking: 1},
		{ServiceTypeID: 1, InventoryItemID: 100, QuantityPerBooking: 1},
		{ServiceTypeID: 2, InventoryItemID: 300, QuantityPerBooking: 1},
	}

	res, err := ApplyConsumption(completedBooking(), rules, items, now)

	require.NoError(t, err)
	assert.Empty(t, res.Shortages)
	require.Len(t, res.Updated, 2)
	assert.Equal(t, int64(100), res.Updated[0].ID)
	assert.Equal(t, 7, res.Updated[0].Quantity)
	assert.Equal(t, int64(200), res.Updated[1].ID)
	assert.Equal(t, 3, res.Updated[1].Quantity)
	assert.Equal(t, domain.StockLowStock, res.Updated[1].Status())
	assert.Equal(t, now, res.Updated[1].UpdatedAt)
}

func TestApplyConsumption_MissingItemIsShortage(t *testing.T) {
	rules := []domain.ConsumptionRule{{ServiceTypeID: 1, InventoryItemID: 404, QuantityPerBooking: 1}}

	res, err := ApplyConsumption(completedBooking(), rules, nil, now)

	require.NoError(t, err)
	assert.Empty(t, res.Updated)
	require.Len(t, res.Shortages, 1)
	assert.Equal(t, int64(404), res.Shortages[0].ItemID)
}

func TestApplyConsumption_RequiresCompleted(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusNoShow} {
		b := completedBooking()
		b.Status = status

		_, err := ApplyConsumption(b, nil, nil, now)
		assert.ErrorIs(t, err, ErrBookingNotCompleted, string(status))
	}
}

func TestRestock(t *testing.T) {
	item := domain.InventoryItem{ID: 1, Quantity: 5, ReorderLevel: 5}
	assert.Equal(t, domain.StockLowStock, item.Status())

	restocked, err := Restock(item, 10, now)

	require.NoError(t, err)
	assert.Equal(t, 15, restocked.Quantity)
	assert.Equal(t, domain.StockInStock, restocked.Status())
	require.NotNil(t, restocked.LastRestocked)
	assert.Equal(t, now, *restocked.LastRestocked)
	assert.Equal(t, 5, item.Quantity)
}

func TestRestock_InvalidAmount(t *testing.T) {
	item := domain.InventoryItem{ID: 1, Quantity: 5}

	for _, amount := range []int{0, -3} {
		got, err := Restock(item, amount, now)
		assert.ErrorIs(t, err, domain.ErrInvalidRestockAmount)
		assert.Equal(t, 5, got.Quantity)
	}
}

func TestStockQueries(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: 1, Quantity: 0, ReorderLevel: 2, UnitCost: 3},
		{ID: 2, Quantity: 2, ReorderLevel: 2, UnitCost: 1.5},
		{ID: 3, Quantity: 10, ReorderLevel: 2, UnitCost: 0.5},
	}

	low := LowStock(items)
	require.Len(t, low, 2)
	assert.Equal(t, int64(1), low[0].ID)
	assert.Equal(t, int64(2), low[1].ID)

	out := OutOfStock(items)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	assert.InDelta(t, 8.0, TotalValue(items), 1e-9)
	assert.Equal(t, 0.0, TotalValue(nil))
}

func TestStaffOccupancy(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	mk := func(staff *string, start, end string, status domain.BookingStatus, date time.Time) domain.Booking {
		return domain.Booking{
			AssignedStaff: staff,
			Date:          date,
			Status:        status,
			Slot:          domain.TimeSlot{Start: types.TimeString(start), End: types.TimeString(end)},
		}
	}

	bookings := []domain.Booking{
		mk(ptr.Ptr("bob"), "09:00", "10:00", domain.StatusConfirmed, day),
		mk(ptr.Ptr("alice"), "09:00", "09:30", domain.StatusPending, day),
		mk(ptr.Ptr("bob"), "11:00", "11:30", domain.StatusCompleted, day),
		mk(ptr.Ptr("bob"), "12:00", "13:00", domain.StatusCancelled, day),
		mk(ptr.Ptr("alice"), "09:00", "10:00", domain.StatusConfirmed, day.AddDate(0, 0, 1)),
		mk(nil, "09:00", "10:00", domain.StatusConfirmed, day),
	}

	got := StaffOccupancy(bookings, day)

	assert.Equal(t, []domain.StaffOccupancy{
		{Staff: "alice", Bookings: 1, BookedMinutes: 30},
		{Staff: "bob", Bookings: 2, BookedMinutes: 90},
	}, got)
}
