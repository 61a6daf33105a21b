package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is the membership relation between one Client and one
// HealthProgram. The composite primary key guarantees at most one row per
// (client, program) pair; unenrolling removes the row entirely.
type Enrollment struct {
	ClientID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"client_id"`
	ProgramID  int       `gorm:"primaryKey;autoIncrement:false" json:"program_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`

	// Relationships
	Client  Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Program HealthProgram `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// Enrollment status constants
const (
	EnrollmentStatusActive = "Active"
)
