package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"health-program-registry/internal/converter"
	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/domain/entity"
	"health-program-registry/internal/domain/repository"
	"health-program-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlreadyEnrolled = errors.New("client is already enrolled in this program")
	ErrNotEnrolled     = errors.New("client is not enrolled in this program")
)

// EnrollmentUsecase owns the (client, program) membership state machine:
// each pair is either Enrolled or NotEnrolled, never anything in between.
type EnrollmentUsecase interface {
	Enroll(ctx context.Context, clientID uuid.UUID, programID int) error
	Unenroll(ctx context.Context, clientID uuid.UUID, programID int) error
	GetClientPrograms(ctx context.Context, clientID uuid.UUID) (*dto.ClientProgramsResponse, error)
	GetProgramClients(ctx context.Context, programID int) (*dto.ProgramClientsResponse, error)
}

type enrollmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	clientRepo     repository.ClientRepository
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	auditService   service.AuditService
}

func NewEnrollmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	programRepo repository.ProgramRepository,
	enrollmentRepo repository.EnrollmentRepository,
	auditService service.AuditService,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		db:             db,
		log:            log,
		clientRepo:     clientRepo,
		programRepo:    programRepo,
		enrollmentRepo: enrollmentRepo,
		auditService:   auditService,
	}
}

// Enroll transitions the pair from NotEnrolled to Enrolled. Both entities
// must exist and the pair must not already be enrolled; on any failure the
// transaction rolls back with no partial effect. A racing duplicate insert
// is rejected by the composite primary key.
func (u *enrollmentUsecase) Enroll(ctx context.Context, clientID uuid.UUID, programID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	program, err := u.programRepo.FindByID(tx, programID)
	if err != nil {
		u.log.Warnf("Failed to find program %d: %+v", programID, err)
		return err
	}
	if program == nil {
		return ErrProgramNotFound
	}

	enrollment := &entity.Enrollment{
		ClientID:  clientID,
		ProgramID: programID,
		Status:    entity.EnrollmentStatusActive,
	}

	if err := u.enrollmentRepo.Create(tx, enrollment); err != nil {
		if isDuplicateKeyError(err) {
			return ErrAlreadyEnrolled
		}
		u.log.Warnf("Failed to enroll client %s in program %d: %+v", clientID, programID, err)
		return err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditUserID(ctx), entity.AuditActionClientEnroll, "enrollment", enrollmentKey(clientID, programID), converter.ProgramToResponse(program)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Client %s enrolled in program %d (%s)", clientID, programID, program.Name)
	return nil
}

// Unenroll transitions the pair from Enrolled to NotEnrolled by removing the
// relation row entirely. The rows-affected check makes concurrent unenrolls
// of the same pair resolve to exactly one success.
func (u *enrollmentUsecase) Unenroll(ctx context.Context, clientID uuid.UUID, programID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	program, err := u.programRepo.FindByID(tx, programID)
	if err != nil {
		u.log.Warnf("Failed to find program %d: %+v", programID, err)
		return err
	}
	if program == nil {
		return ErrProgramNotFound
	}

	affectedRows, err := u.enrollmentRepo.Delete(tx, clientID, programID)
	if err != nil {
		u.log.Warnf("Failed to unenroll client %s from program %d: %+v", clientID, programID, err)
		return err
	}
	if affectedRows == 0 {
		return ErrNotEnrolled
	}

	if err := u.auditService.LogDelete(ctx, tx, auditUserID(ctx), entity.AuditActionClientUnenroll, "enrollment", enrollmentKey(clientID, programID), converter.ProgramToResponse(program)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Client %s unenrolled from program %d (%s)", clientID, programID, program.Name)
	return nil
}

// GetClientPrograms lists programs the client is enrolled in. An unknown
// client id yields an empty list, not an error.
func (u *enrollmentUsecase) GetClientPrograms(ctx context.Context, clientID uuid.UUID) (*dto.ClientProgramsResponse, error) {
	programs, err := u.enrollmentRepo.FindProgramsByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to find programs for client %s: %+v", clientID, err)
		return nil, err
	}

	responses := converter.ProgramsToResponses(programs)
	return &dto.ClientProgramsResponse{
		Programs: responses,
		Total:    len(responses),
	}, nil
}

// GetProgramClients lists clients enrolled in the program. An unknown
// program id yields an empty list, not an error.
func (u *enrollmentUsecase) GetProgramClients(ctx context.Context, programID int) (*dto.ProgramClientsResponse, error) {
	clients, err := u.enrollmentRepo.FindClientsByProgramID(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find clients for program %d: %+v", programID, err)
		return nil, err
	}

	responses := converter.ClientsToResponses(clients)
	return &dto.ProgramClientsResponse{
		Clients: responses,
		Total:   len(responses),
	}, nil
}

func enrollmentKey(clientID uuid.UUID, programID int) string {
	return fmt.Sprintf("%s:%s", clientID.String(), strconv.Itoa(programID))
}
