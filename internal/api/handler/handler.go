package handler

import "huddle/backend/internal/chathub"

// Handler carries the hub and the JWT signing secret for the HTTP surface.
type Handler struct {
	Hub       *chathub.ManagerService
	JWTSecret []byte
}

func NewHandler(hub *chathub.ManagerService, jwtSecret []byte) *Handler {
	return &Handler{Hub: hub, JWTSecret: jwtSecret}
}
