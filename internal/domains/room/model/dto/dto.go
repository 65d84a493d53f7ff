package dto

import (
	"guesthouse/internal/domains/room/model"
	"guesthouse/shared"
)

type CreateRoomRequest struct {
	RoomNumber int    `json:"room_number" validate:"required,gt=0"`
	RoomName   string `json:"room_name"   validate:"required,max=100"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		RoomNumber: c.RoomNumber,
		RoomName:   c.RoomName,
	}
}

type CreateRoomResponse struct {
	RoomID int64 `json:"room_id"`
}

type RoomResponse struct {
	RoomID     int64  `json:"room_id"`
	RoomNumber int    `json:"room_number"`
	RoomName   string `json:"room_name"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomName = model.RoomName
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
