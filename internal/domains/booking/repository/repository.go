package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"guesthouse/infras/otel"
	"guesthouse/infras/sqlite"
	"guesthouse/internal/domains/booking/model"
	guestModel "guesthouse/internal/domains/guest/model"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	gRepo "guesthouse/shared/repository"
)

type Booking interface {
	InsertWithGuest(ctx context.Context, guest guestModel.Guest, booking model.Booking) (bookingID, guestID int64, err error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	guests gRepo.Repository[guestModel.Guest]
	db     *sqlite.Connection
	otel   otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		guests:     gRepo.NewRepository[guestModel.Guest](guestModel.EntityName, guestModel.TableName, guestModel.FieldUserID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithGuest stores the guest row and the booking row in a single
// transaction, so a failed booking insert never leaves an orphaned guest. The
// booking's guest reference is assigned from the freshly generated guest id.
func (repo *repositoryImpl) InsertWithGuest(ctx context.Context, guest guestModel.Guest, booking model.Booking) (bookingID, guestID int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := repo.db.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	guestID, err = repo.guests.InsertTx(ctx, tx, guest)
	if err != nil {
		return 0, 0, err //nolint:wrapcheck
	}

	booking.UserID = guestID

	bookingID, err = repo.Repository.InsertTx(ctx, tx, booking)
	if err != nil {
		return 0, 0, err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return bookingID, guestID, nil
}
