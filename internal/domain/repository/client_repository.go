package repository

import (
	"health-program-registry/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Client, error)
	FindAll(db *gorm.DB) ([]entity.Client, error)
	SearchByName(db *gorm.DB, query string) ([]entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
}
