package repository

import (
	"health-program-registry/internal/domain/entity"
	domainRepo "health-program-registry/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type enrollmentRepository struct{}

func NewEnrollmentRepository() domainRepo.EnrollmentRepository {
	return &enrollmentRepository{}
}

func (r *enrollmentRepository) Create(db *gorm.DB, enrollment *entity.Enrollment) error {
	return db.Create(enrollment).Error
}

// Delete removes the enrollment row entirely. Affected rows: 1 = unenrolled,
// 0 = pair was not enrolled (prevents a double-unenroll race).
func (r *enrollmentRepository) Delete(db *gorm.DB, clientID uuid.UUID, programID int) (int64, error) {
	result := db.Where("client_id = ? AND program_id = ?", clientID, programID).
		Delete(&entity.Enrollment{})
	return result.RowsAffected, result.Error
}

func (r *enrollmentRepository) FindProgramsByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.HealthProgram, error) {
	var programs []entity.HealthProgram
	err := db.Model(&entity.HealthProgram{}).
		Joins("JOIN enrollments ON enrollments.program_id = health_programs.id").
		Where("enrollments.client_id = ?", clientID).
		Order("enrollments.enrolled_at ASC").
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *enrollmentRepository) FindClientsByProgramID(db *gorm.DB, programID int) ([]entity.Client, error) {
	var clients []entity.Client
	err := db.Model(&entity.Client{}).
		Joins("JOIN enrollments ON enrollments.client_id = clients.id").
		Where("enrollments.program_id = ?", programID).
		Order("enrollments.enrolled_at ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
