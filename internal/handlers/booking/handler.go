package booking

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/service"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/validator"
	"guesthouse/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
		routerGroup.Get("/", handler.GetBookings)
	})

	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/{roomName}", handler.GetBookedDates)
		routerGroup.Get("/{roomName}/{date}", handler.GetAvailability)
	})
}

// SubmitBooking accepts a booking form, stores the guest and the booking, and
// returns the generated identifiers.
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	var req dto.SubmitBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves bookings with optional date-range filtering and
// pagination.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomID := r.URL.Query().Get("room_id"); roomID != "" {
		if id, err := strconv.ParseInt(roomID, 10, 64); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			})
		}
	}

	if from := r.URL.Query().Get("from"); from != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "from",
			Field:    model.FieldBookingToDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get("to"); to != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "to",
			Field:    model.FieldBookingFromDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookedDates returns the sorted set of dates on which the room is booked.
func (handler *Handler) GetBookedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookedDates")
	defer scope.End()

	roomName, err := url.PathUnescape(chi.URLParam(r, constant.RequestParamRoomName))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.BookedDates(ctx, roomName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booked dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booked dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability reports whether the room is booked on one specific date.
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	roomName, err := url.PathUnescape(chi.URLParam(r, constant.RequestParamRoomName))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date := chi.URLParam(r, constant.RequestParamDate)

	res, err := handler.service.IsBooked(ctx, roomName, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}
