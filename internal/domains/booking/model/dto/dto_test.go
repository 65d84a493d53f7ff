package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
)

func TestSubmitBookingRequest_ToGuestModel(t *testing.T) {
	req := dto.SubmitBookingRequest{
		GuestName: "J. Smith",
		GuestRank: "Captain",
		GuestUnit: "3rd Battalion",
	}

	guest := req.ToGuestModel()

	assert.Zero(t, guest.UserID, "expected guest ID to be unset before insert")
	assert.Equal(t, "J. Smith", guest.Name)
	assert.Equal(t, "Captain", guest.Rank)
	assert.Equal(t, "3rd Battalion", guest.Unit)
}

func TestSubmitBookingRequest_ToModel(t *testing.T) {
	req := dto.SubmitBookingRequest{
		RoomName:           "Hall A",
		NumberOfGuests:     "4",
		FoodPreference:     "vegetarian",
		SpecialRequirement: "ground floor",
		FromDate:           "2024-06-01",
		ToDate:             "2024-06-03",
		GuestName:          "J. Smith",
		GuestRank:          "Captain",
		GuestUnit:          "3rd Battalion",
	}

	booking := req.ToModel(7, 4)

	assert.Equal(t, int64(7), booking.RoomID)
	assert.Zero(t, booking.UserID, "expected guest reference to be assigned by the repository")
	assert.Equal(t, 4, booking.NumberOfGuests)
	assert.Equal(t, "vegetarian", booking.FoodPreference)
	assert.Equal(t, "ground floor", booking.SpecialRequirement)
	assert.Equal(t, "2024-06-01", booking.BookingFromDate)
	assert.Equal(t, "2024-06-03", booking.BookingToDate)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{
			BookingID:       1,
			RoomID:          7,
			UserID:          11,
			NumberOfGuests:  4,
			FoodPreference:  "vegetarian",
			BookingFromDate: "2024-06-01",
			BookingToDate:   "2024-06-03",
		},
		{
			BookingID:       2,
			RoomID:          7,
			UserID:          12,
			NumberOfGuests:  2,
			FoodPreference:  "none",
			BookingFromDate: "2024-06-10",
			BookingToDate:   "2024-06-10",
		},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, int64(11), res.Bookings[0].GuestID)
	assert.Equal(t, "2024-06-10", res.Bookings[1].FromDate)
}
