package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person receiving health services, tracked
// independently of program enrollment.
type Client struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName      string    `gorm:"type:varchar(64);not null;index" json:"first_name"`
	LastName       string    `gorm:"type:varchar(64);not null;index" json:"last_name"`
	DateOfBirth    time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender         string    `gorm:"type:varchar(10);not null" json:"gender"`
	ContactNumber  string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	Email          string    `gorm:"type:varchar(120)" json:"email,omitempty"`
	Address        string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:ClientID" json:"enrollments,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
