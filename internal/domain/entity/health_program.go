package entity

import "time"

// HealthProgram represents a named service offering clients can enroll in.
// Name is globally unique.
type HealthProgram struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:ProgramID" json:"enrollments,omitempty"`
}

func (HealthProgram) TableName() string {
	return "health_programs"
}

// Program status constants
const (
	ProgramStatusActive   = "Active"
	ProgramStatusInactive = "Inactive"
)
