package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BookRequest struct {
	Seats int `json:"seats" binding:"required"`
}

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	LocationType string `json:"location_type" binding:"required"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
}
