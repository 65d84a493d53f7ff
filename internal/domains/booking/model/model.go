package model

import (
	"fmt"
	"time"

	"guesthouse/shared/constant"
)

const (
	TableName  = "Bookings"
	EntityName = "booking"

	FieldBookingID          = "BookingID"
	FieldRoomID             = "RoomID"
	FieldUserID             = "UserID"
	FieldNumberOfGuests     = "NumberOfGuests"
	FieldFoodPreference     = "FoodPreference"
	FieldSpecialRequirement = "SpecialRequirement"
	FieldBookingFromDate    = "BookingFromDate"
	FieldBookingToDate      = "BookingToDate"
)

// Booking is a reservation of a room for an inclusive date range by a guest.
// Dates are stored as ISO-8601 YYYY-MM-DD text. Bookings are never updated or
// cancelled.
type Booking struct {
	BookingID          int64  `db:"BookingID"`
	RoomID             int64  `db:"RoomID"`
	UserID             int64  `db:"UserID"`
	NumberOfGuests     int    `db:"NumberOfGuests"`
	FoodPreference     string `db:"FoodPreference"`
	SpecialRequirement string `db:"SpecialRequirement"`
	BookingFromDate    string `db:"BookingFromDate"`
	BookingToDate      string `db:"BookingToDate"`
}

// Dates expands the inclusive [from, to] range into the individual calendar
// dates it covers. A stored range whose start is after its end expands to
// zero dates; such rows are tolerated on read rather than rejected.
func (b *Booking) Dates() ([]string, error) {
	from, err := time.Parse(constant.DateFormat, b.BookingFromDate)
	if err != nil {
		return nil, fmt.Errorf("parsing booking from date %q: %w", b.BookingFromDate, err)
	}

	to, err := time.Parse(constant.DateFormat, b.BookingToDate)
	if err != nil {
		return nil, fmt.Errorf("parsing booking to date %q: %w", b.BookingToDate, err)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constant.DateFormat))
	}

	return dates, nil
}
