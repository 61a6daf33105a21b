package repository

import (
	"health-program-registry/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(db *gorm.DB, enrollment *entity.Enrollment) error
	// Delete removes the relation row and reports affected rows so callers
	// can distinguish "unenrolled" from "was not enrolled" atomically.
	Delete(db *gorm.DB, clientID uuid.UUID, programID int) (int64, error)
	FindProgramsByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.HealthProgram, error)
	FindClientsByProgramID(db *gorm.DB, programID int) ([]entity.Client, error)
}
