package repository

import (
	"errors"

	"health-program-registry/internal/domain/entity"
	domainRepo "health-program-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type programRepository struct{}

func NewProgramRepository() domainRepo.ProgramRepository {
	return &programRepository{}
}

func (r *programRepository) Create(db *gorm.DB, program *entity.HealthProgram) error {
	return db.Create(program).Error
}

func (r *programRepository) FindByID(db *gorm.DB, id int) (*entity.HealthProgram, error) {
	var program entity.HealthProgram
	err := db.Where("id = ?", id).First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) FindAll(db *gorm.DB) ([]entity.HealthProgram, error) {
	var programs []entity.HealthProgram
	err := db.Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Update(db *gorm.DB, program *entity.HealthProgram) error {
	return db.Save(program).Error
}
