package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClientRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=64"`
	LastName       string `json:"last_name" validate:"required,max=64"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"required,max=10"`
	ContactNumber  string `json:"contact_number" validate:"omitempty,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"omitempty,max=200"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

// UpdateClientRequest is a partial update: nil fields are left untouched.
type UpdateClientRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=64"`
	LastName       *string `json:"last_name" validate:"omitempty,max=64"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender" validate:"omitempty,max=10"`
	ContactNumber  *string `json:"contact_number" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Address        *string `json:"address" validate:"omitempty,max=200"`
	MedicalHistory *string `json:"medical_history" validate:"omitempty"`
}

// Response DTOs

type ClientResponse struct {
	ID             uuid.UUID         `json:"id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	DateOfBirth    string            `json:"date_of_birth"`
	Gender         string            `json:"gender"`
	ContactNumber  string            `json:"contact_number,omitempty"`
	Email          string            `json:"email,omitempty"`
	Address        string            `json:"address,omitempty"`
	MedicalHistory string            `json:"medical_history,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	Programs       []ProgramResponse `json:"programs"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
