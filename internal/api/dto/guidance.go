package dto

import "guidance-service/internal/domain"

type CoordinatesRequest struct {
	X *int `json:"x" validate:"required,min=-2147483648,max=2147483647"`
	Y *int `json:"y" validate:"required,min=-2147483648,max=2147483647"`
}

type GuidanceRequest struct {
	Current        *CoordinatesRequest `json:"current" validate:"required"`
	NextWaypointID string              `json:"next_waypoint_id" validate:"required,max=128"`
}

type GuidanceResponse struct {
	Distance  float64          `json:"distance"`
	Event     domain.Event     `json:"event"`
	Direction domain.Direction `json:"direction"`
}
