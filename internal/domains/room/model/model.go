package model

const (
	TableName  = "Rooms"
	EntityName = "room"

	FieldRoomID     = "RoomID"
	FieldRoomNumber = "RoomNumber"
	FieldRoomName   = "RoomName"
)

// Room is a bookable physical space. Rooms are immutable after creation.
type Room struct {
	RoomID     int64  `db:"RoomID"`
	RoomNumber int    `db:"RoomNumber"`
	RoomName   string `db:"RoomName"`
}
