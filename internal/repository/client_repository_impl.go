package repository

import (
	"errors"

	"health-program-registry/internal/domain/entity"
	domainRepo "health-program-registry/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(db *gorm.DB) ([]entity.Client, error) {
	var clients []entity.Client
	err := db.Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// SearchByName matches a case-insensitive substring against first name OR
// last name. An empty query matches every client.
func (r *clientRepository) SearchByName(db *gorm.DB, query string) ([]entity.Client, error) {
	var clients []entity.Client
	pattern := "%" + query + "%"
	err := db.Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", pattern, pattern).
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	return db.Save(client).Error
}
