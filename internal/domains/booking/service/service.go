package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/repository"
	roomModel "guesthouse/internal/domains/room/model"
	roomRepo "guesthouse/internal/domains/room/repository"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/validator"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	BookedDates(ctx context.Context, roomName string) (dto.BookedDatesResponse, error)
	IsBooked(ctx context.Context, roomName, date string) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Submit validates a booking request, creates the guest record and the
// booking record in one transaction, and reports the generated identifiers.
// Requests whose date range overlaps an existing booking for the same room
// are rejected.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	numberOfGuests, err := strconv.Atoi(req.NumberOfGuests)
	if err != nil || numberOfGuests <= 0 {
		return res, failure.Unprocessable("number of guests must be a positive integer") // nolint:wrapcheck
	}

	from, err := time.Parse(constant.DateFormat, req.FromDate)
	if err != nil {
		return res, failure.BadRequestFromString("from date must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	to, err := time.Parse(constant.DateFormat, req.ToDate)
	if err != nil {
		return res, failure.BadRequestFromString("to date must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if from.After(to) {
		return res, failure.BadRequestFromString("from date must be on or before to date") // nolint:wrapcheck
	}

	room, err := s.resolveRoom(ctx, req.RoomName)
	if err != nil {
		return res, err
	}

	overlaps, err := s.repo.Exist(ctx, overlapFilter(room.RoomID, req.FromDate, req.ToDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping bookings")

		return res, fmt.Errorf("failed to check for overlapping bookings: %w", err)
	}

	if overlaps {
		return res, failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	bookingID, guestID, err := s.repo.InsertWithGuest(ctx, req.ToGuestModel(), req.ToModel(room.RoomID, numberOfGuests))
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.AddEvent(fmt.Sprintf("Booking %d created for room %s", bookingID, room.RoomName))

	return dto.SubmitBookingResponse{
		BookingID: bookingID,
		GuestID:   guestID,
	}, nil
}

// BookedDates expands every booking of the room into individual calendar
// dates and returns their sorted union. The set is recomputed from storage on
// each call.
func (s *serviceImpl) BookedDates(ctx context.Context, roomName string) (res dto.BookedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookedDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.resolveRoom(ctx, roomName)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(room.RoomID, model.FieldRoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for room")

		return res, fmt.Errorf("failed to get bookings for room: %w", err)
	}

	seen := map[string]bool{}

	for _, booking := range bookings {
		dates, err := booking.Dates()
		if err != nil {
			log.Error().Err(err).Int64("bookingID", booking.BookingID).Msg("stored booking has a malformed date range")

			return res, fmt.Errorf("stored booking has a malformed date range: %w", err)
		}

		for _, date := range dates {
			seen[date] = true
		}
	}

	booked := make([]string, 0, len(seen))
	for date := range seen {
		booked = append(booked, date)
	}

	// ISO dates sort chronologically as strings.
	slices.Sort(booked)

	return dto.BookedDatesResponse{
		RoomName:    room.RoomName,
		BookedDates: booked,
	}, nil
}

// IsBooked reports whether the room is booked on the given date, by
// membership in the room's booked-date set.
func (s *serviceImpl) IsBooked(ctx context.Context, roomName, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = time.Parse(constant.DateFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	bookedDates, err := s.BookedDates(ctx, roomName)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		RoomName: bookedDates.RoomName,
		Date:     date,
		Booked:   slices.Contains(bookedDates.BookedDates, date),
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) resolveRoom(ctx context.Context, roomName string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByField(roomName, roomModel.FieldRoomName, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up room")

		return room, fmt.Errorf("failed to look up room: %w", err)
	}

	if room.RoomID == 0 {
		return room, failure.NotFound("room") // nolint:wrapcheck
	}

	return room, nil
}

// overlapFilter matches bookings of the room whose inclusive [from, to]
// range intersects the requested one. Lexicographic comparison is safe
// because dates are stored as YYYY-MM-DD text.
func overlapFilter(roomID int64, fromDate, toDate string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "toDate",
				Field:    model.FieldBookingFromDate,
				Value:    toDate,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "fromDate",
				Field:    model.FieldBookingToDate,
				Value:    fromDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
		},
	}
}
