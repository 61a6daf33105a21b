package repository

import (
	"health-program-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type ProgramRepository interface {
	Create(db *gorm.DB, program *entity.HealthProgram) error
	FindByID(db *gorm.DB, id int) (*entity.HealthProgram, error)
	FindAll(db *gorm.DB) ([]entity.HealthProgram, error)
	Update(db *gorm.DB, program *entity.HealthProgram) error
}
