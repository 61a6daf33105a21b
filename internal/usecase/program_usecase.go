package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"health-program-registry/internal/converter"
	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/domain/entity"
	"health-program-registry/internal/domain/repository"
	"health-program-registry/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	// ErrProgramNameTaken is a normal "could not create" outcome; handlers
	// branch on it to render a user-facing message.
	ErrProgramNameTaken = errors.New("program with this name already exists")
)

type ProgramUsecase interface {
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error)
	GetProgram(ctx context.Context, programID int) (*dto.ProgramResponse, error)
	GetAllPrograms(ctx context.Context) (*dto.ProgramListResponse, error)
	UpdateProgram(ctx context.Context, programID int, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error)
}

type programUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	programRepo  repository.ProgramRepository
	auditService service.AuditService
}

func NewProgramUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	programRepo repository.ProgramRepository,
	auditService service.AuditService,
) ProgramUsecase {
	return &programUsecase{
		db:           db,
		log:          log,
		programRepo:  programRepo,
		auditService: auditService,
	}
}

func (u *programUsecase) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	status := req.Status
	if status == "" {
		status = entity.ProgramStatusActive
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program := &entity.HealthProgram{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
	}

	if err := u.programRepo.Create(tx, program); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrProgramNameTaken
		}
		u.log.Warnf("Failed to create program: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditUserID(ctx), entity.AuditActionProgramCreate, "health_program", strconv.Itoa(program.ID), converter.ProgramToResponse(program)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProgramToResponse(program), nil
}

func (u *programUsecase) GetProgram(ctx context.Context, programID int) (*dto.ProgramResponse, error) {
	program, err := u.programRepo.FindByID(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find program %d: %+v", programID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	return converter.ProgramToResponse(program), nil
}

func (u *programUsecase) GetAllPrograms(ctx context.Context) (*dto.ProgramListResponse, error) {
	programs, err := u.programRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all programs: %+v", err)
		return nil, err
	}

	responses := converter.ProgramsToResponses(programs)
	return &dto.ProgramListResponse{
		Programs: responses,
		Total:    len(responses),
	}, nil
}

func (u *programUsecase) UpdateProgram(ctx context.Context, programID int, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program, err := u.programRepo.FindByID(tx, programID)
	if err != nil {
		u.log.Warnf("Failed to find program %d: %+v", programID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	oldValue := converter.ProgramToResponse(program)

	if err := applyProgramUpdate(program, req); err != nil {
		return nil, err
	}

	if err := u.programRepo.Update(tx, program); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrProgramNameTaken
		}
		u.log.Warnf("Failed to update program %d: %+v", programID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, auditUserID(ctx), entity.AuditActionProgramUpdate, "health_program", strconv.Itoa(programID), oldValue, converter.ProgramToResponse(program)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProgramToResponse(program), nil
}

// applyProgramUpdate applies only the fields present in the partial update.
// An explicit empty date string clears the stored date.
func applyProgramUpdate(program *entity.HealthProgram, req *dto.UpdateProgramRequest) error {
	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.StartDate != nil {
		date, err := parseOptionalDate(*req.StartDate)
		if err != nil {
			return ErrInvalidDateFormat
		}
		program.StartDate = date
	}
	if req.EndDate != nil {
		date, err := parseOptionalDate(*req.EndDate)
		if err != nil {
			return ErrInvalidDateFormat
		}
		program.EndDate = date
	}
	if req.Status != nil {
		program.Status = *req.Status
	}
	return nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
