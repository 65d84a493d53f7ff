package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/internal/domains/room/model"
	"guesthouse/internal/domains/room/model/dto"
	"guesthouse/internal/domains/room/repository"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/validator"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (int64, error)
	ListNames(ctx context.Context) ([]string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create seeds a new room. Room names double as the booking selector, so both
// the room number and the name must be unique.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return 0, err
	}

	numberTaken, err := s.repo.Exist(ctx, shared.FilterByField(req.RoomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room number exists")

		return 0, fmt.Errorf("failed to check if room number exists: %w", err)
	}

	if numberTaken {
		return 0, failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	nameTaken, err := s.repo.Exist(ctx, shared.FilterByField(req.RoomName, model.FieldRoomName, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room name exists")

		return 0, fmt.Errorf("failed to check if room name exists: %w", err)
	}

	if nameTaken {
		return 0, failure.Conflict("room name already exists") // nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return 0, fmt.Errorf("failed to create room: %w", err)
	}

	return id, nil
}

// ListNames returns all room names ordered by room number, for the room
// selector of the booking form.
func (s *serviceImpl) ListNames(ctx context.Context) (names []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListNames")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	names = make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.RoomName
	}

	return names, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
