package dto

type TimeSlotResponse struct {
	ID   int    `json:"id"`
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int                `json:"total"`
}
