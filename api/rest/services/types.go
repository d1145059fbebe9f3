package services

import "codeberg.org/bookshelf/server/bookshelf/services"

type ServicesResponse struct {
	Services []services.Service `json:"services"`
}

type MoveRequest struct {
	Direction services.Direction `json:"direction" binding:"required,oneof=up down"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
