package repository_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/infras/otel/mocks"
	"guesthouse/infras/sqlite"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/repository"
	guestModel "guesthouse/internal/domains/guest/model"
	gDto "guesthouse/shared/dto"
)

const schema = `
CREATE TABLE Rooms (
    RoomID INTEGER PRIMARY KEY,
    RoomNumber INTEGER UNIQUE NOT NULL,
    RoomName TEXT NOT NULL
);
CREATE TABLE Users (
    UserID INTEGER PRIMARY KEY,
    Name TEXT NOT NULL,
    Rank TEXT NOT NULL,
    Unit TEXT NOT NULL
);
CREATE TABLE Bookings (
    BookingID INTEGER PRIMARY KEY,
    RoomID INTEGER,
    UserID INTEGER,
    NumberOfGuests INTEGER NOT NULL,
    FoodPreference TEXT,
    SpecialRequirement TEXT,
    BookingFromDate DATE NOT NULL,
    BookingToDate DATE NOT NULL,
    FOREIGN KEY (RoomID) REFERENCES Rooms(RoomID),
    FOREIGN KEY (UserID) REFERENCES Users(UserID)
);
`

func newTestConnection(t *testing.T) *sqlite.Connection {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)

	// Every pooled connection would otherwise see its own empty in-memory
	// database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO Rooms (RoomNumber, RoomName) VALUES (101, 'Garden Suite')`)
	require.NoError(t, err)

	return &sqlite.Connection{DB: db}
}

func testGuest() guestModel.Guest {
	return guestModel.Guest{
		Name: "Sam Carter",
		Rank: "Captain",
		Unit: "3rd Battalion",
	}
}

func testBooking() model.Booking {
	return model.Booking{
		RoomID:          1,
		NumberOfGuests:  2,
		FoodPreference:  "vegetarian",
		BookingFromDate: "2026-09-10",
		BookingToDate:   "2026-09-12",
	}
}

func TestBookingRepository_InsertWithGuest(t *testing.T) {
	conn := newTestConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	bookingID, guestID, err := repo.InsertWithGuest(context.Background(), testGuest(), testBooking())
	assert.NoError(t, err)
	assert.NotZero(t, bookingID)
	assert.NotZero(t, guestID)

	var userID int64
	err = conn.DB.Get(&userID, "SELECT UserID FROM Bookings WHERE BookingID = ?", bookingID)
	assert.NoError(t, err)
	assert.Equal(t, guestID, userID)
}

func TestBookingRepository_InsertWithGuest_RollsBackGuestOnFailure(t *testing.T) {
	conn := newTestConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	// Make the second insert of the transaction fail.
	_, err := conn.DB.Exec("DROP TABLE Bookings")
	require.NoError(t, err)

	_, _, err = repo.InsertWithGuest(context.Background(), testGuest(), testBooking())
	assert.Error(t, err)

	var count int
	err = conn.DB.Get(&count, "SELECT COUNT(*) FROM Users")
	assert.NoError(t, err)
	assert.Zero(t, count, "failed booking insert must not leave a guest row behind")
}

func TestBookingRepository_Exist_OverlapWindow(t *testing.T) {
	conn := newTestConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	_, _, err := repo.InsertWithGuest(context.Background(), testGuest(), testBooking())
	require.NoError(t, err)

	overlapFilter := func(from, to string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldRoomID,
					Value:    int64(1),
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "toDate",
					Field:    model.FieldBookingFromDate,
					Value:    to,
					Operator: gDto.FilterOperatorLessEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "fromDate",
					Field:    model.FieldBookingToDate,
					Value:    from,
					Operator: gDto.FilterOperatorGreaterEq,
					Table:    model.TableName,
				},
			},
		}
	}

	tests := []struct {
		name    string
		from    string
		to      string
		overlap bool
	}{
		{name: "identical range", from: "2026-09-10", to: "2026-09-12", overlap: true},
		{name: "shares only the last day", from: "2026-09-12", to: "2026-09-14", overlap: true},
		{name: "contained inside", from: "2026-09-11", to: "2026-09-11", overlap: true},
		{name: "starts the day after checkout", from: "2026-09-13", to: "2026-09-14", overlap: false},
		{name: "ends the day before checkin", from: "2026-09-08", to: "2026-09-09", overlap: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repo.Exist(context.Background(), overlapFilter(tt.from, tt.to))
			assert.NoError(t, err)
			assert.Equal(t, tt.overlap, exists)
		})
	}
}

func TestBookingRepository_GetAll(t *testing.T) {
	conn := newTestConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	_, _, err := repo.InsertWithGuest(context.Background(), testGuest(), testBooking())
	require.NoError(t, err)

	second := testBooking()
	second.BookingFromDate = "2026-10-01"
	second.BookingToDate = "2026-10-02"

	_, _, err = repo.InsertWithGuest(context.Background(), testGuest(), second)
	require.NoError(t, err)

	bookings, err := repo.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)

	count, err := repo.Count(context.Background(), gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
