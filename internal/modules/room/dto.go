package room

import "roombooking/internal/domain"

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=500"`
	Address     string  `json:"address" binding:"max=100"`
}

type RoomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	PricePerDay float64 `json:"price_per_day"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address"`
}

func toRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Description: r.Description,
		Address:     r.Address,
	}
}

func toRoomResponses(rooms []domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return out
}
