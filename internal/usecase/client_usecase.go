package usecase

import (
	"context"
	"errors"
	"time"

	"health-program-registry/internal/converter"
	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/delivery/http/middleware"
	"health-program-registry/internal/domain/entity"
	"health-program-registry/internal/domain/repository"
	"health-program-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type ClientUsecase interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*dto.ClientResponse, error)
	GetAllClients(ctx context.Context) (*dto.ClientListResponse, error)
	SearchClients(ctx context.Context, query string) (*dto.ClientListResponse, error)
	UpdateClient(ctx context.Context, clientID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
}

type clientUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	clientRepo     repository.ClientRepository
	enrollmentRepo repository.EnrollmentRepository
	auditService   service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	enrollmentRepo repository.EnrollmentRepository,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:             db,
		log:            log,
		clientRepo:     clientRepo,
		enrollmentRepo: enrollmentRepo,
		auditService:   auditService,
	}
}

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client := &entity.Client{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	if err := u.clientRepo.Create(tx, client); err != nil {
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditUserID(ctx), entity.AuditActionClientCreate, "client", client.ID.String(), converter.ClientToResponse(client, nil)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client, nil), nil
}

func (u *clientUsecase) GetClient(ctx context.Context, clientID uuid.UUID) (*dto.ClientResponse, error) {
	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	programs, err := u.enrollmentRepo.FindProgramsByClientID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to find programs for client %s: %+v", clientID, err)
		return nil, err
	}

	return converter.ClientToResponse(client, programs), nil
}

func (u *clientUsecase) GetAllClients(ctx context.Context) (*dto.ClientListResponse, error) {
	clients, err := u.clientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all clients: %+v", err)
		return nil, err
	}

	responses := converter.ClientsToResponses(clients)
	return &dto.ClientListResponse{
		Clients: responses,
		Total:   len(responses),
	}, nil
}

// SearchClients matches a case-insensitive substring against first or last
// name. An empty query matches every client; avoiding that is the caller's
// concern.
func (u *clientUsecase) SearchClients(ctx context.Context, query string) (*dto.ClientListResponse, error) {
	clients, err := u.clientRepo.SearchByName(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to search clients with query %q: %+v", query, err)
		return nil, err
	}

	responses := converter.ClientsToResponses(clients)
	return &dto.ClientListResponse{
		Clients: responses,
		Total:   len(responses),
	}, nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, clientID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	oldValue := converter.ClientToResponse(client, nil)

	if err := applyClientUpdate(client, req); err != nil {
		return nil, err
	}

	if err := u.clientRepo.Update(tx, client); err != nil {
		u.log.Warnf("Failed to update client %s: %+v", clientID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, auditUserID(ctx), entity.AuditActionClientUpdate, "client", clientID.String(), oldValue, converter.ClientToResponse(client, nil)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	programs, err := u.enrollmentRepo.FindProgramsByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to find programs for client %s: %+v", clientID, err)
		return converter.ClientToResponse(client, nil), nil
	}

	return converter.ClientToResponse(client, programs), nil
}

// applyClientUpdate applies only the fields present in the partial update;
// nil fields are no-ops.
func applyClientUpdate(client *entity.Client, req *dto.UpdateClientRequest) error {
	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return ErrInvalidDateFormat
		}
		client.DateOfBirth = dob
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}
	if req.ContactNumber != nil {
		client.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.MedicalHistory != nil {
		client.MedicalHistory = *req.MedicalHistory
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// auditUserID resolves the acting user for the audit trail. Unauthenticated
// contexts record NULL, never the zero uuid.
func auditUserID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
