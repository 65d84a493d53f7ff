package dto

import (
	"guesthouse/internal/domains/booking/model"
	guestModel "guesthouse/internal/domains/guest/model"
	"guesthouse/shared"
)

// SubmitBookingRequest carries the booking form as entered by the guest. The
// guest count arrives as text and is parsed by the submission logic so that a
// malformed number is reported separately from a missing field.
type SubmitBookingRequest struct {
	RoomName           string `json:"room_name"           validate:"required"`
	NumberOfGuests     string `json:"number_of_guests"    validate:"required"`
	FoodPreference     string `json:"food_preference"     validate:"required"`
	SpecialRequirement string `json:"special_requirement" validate:"omitempty"`
	FromDate           string `json:"from_date"           validate:"required,datetime=2006-01-02"`
	ToDate             string `json:"to_date"             validate:"required,datetime=2006-01-02"`
	GuestName          string `json:"guest_name"          validate:"required"`
	GuestRank          string `json:"guest_rank"          validate:"required"`
	GuestUnit          string `json:"guest_unit"          validate:"required"`
}

func (r *SubmitBookingRequest) ToGuestModel() guestModel.Guest {
	return guestModel.Guest{
		Name: r.GuestName,
		Rank: r.GuestRank,
		Unit: r.GuestUnit,
	}
}

// ToModel builds the booking row for an already-resolved room and parsed
// guest count. The guest identifier is assigned by the repository once the
// guest row has been inserted.
func (r *SubmitBookingRequest) ToModel(roomID int64, numberOfGuests int) model.Booking {
	return model.Booking{
		RoomID:             roomID,
		NumberOfGuests:     numberOfGuests,
		FoodPreference:     r.FoodPreference,
		SpecialRequirement: r.SpecialRequirement,
		BookingFromDate:    r.FromDate,
		BookingToDate:      r.ToDate,
	}
}

type SubmitBookingResponse struct {
	BookingID int64 `json:"booking_id"`
	GuestID   int64 `json:"guest_id"`
}

type BookingResponse struct {
	BookingID          int64  `json:"booking_id"`
	RoomID             int64  `json:"room_id"`
	GuestID            int64  `json:"guest_id"`
	NumberOfGuests     int    `json:"number_of_guests"`
	FoodPreference     string `json:"food_preference"`
	SpecialRequirement string `json:"special_requirement"`
	FromDate           string `json:"from_date"`
	ToDate             string `json:"to_date"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.GuestID = model.UserID
	r.NumberOfGuests = model.NumberOfGuests
	r.FoodPreference = model.FoodPreference
	r.SpecialRequirement = model.SpecialRequirement
	r.FromDate = model.BookingFromDate
	r.ToDate = model.BookingToDate
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookedDatesResponse lists every calendar date on which the room is booked,
// sorted ascending, for calendar highlighting.
type BookedDatesResponse struct {
	RoomName    string   `json:"room_name"`
	BookedDates []string `json:"booked_dates"`
}

type AvailabilityResponse struct {
	RoomName string `json:"room_name"`
	Date     string `json:"date"`
	Booked   bool   `json:"booked"`
}
