package usecase

import (
	"io"
	"testing"
	"time"

	"health-program-registry/config"
	"health-program-registry/internal/domain/entity"
	"health-program-registry/internal/repository"
	"health-program-registry/internal/service"
	"health-program-registry/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db                *gorm.DB
	jwtService        *jwt.JWTService
	authUsecase       AuthUsecase
	clientUsecase     ClientUsecase
	programUsecase    ProgramUsecase
	enrollmentUsecase EnrollmentUsecase
	auditLogUsecase   AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Client{},
		&entity.HealthProgram{},
		&entity.Enrollment{},
		&entity.AuditLog{},
	)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	userRepo := repository.NewUserRepository()
	clientRepo := repository.NewClientRepository()
	programRepo := repository.NewProgramRepository()
	enrollmentRepo := repository.NewEnrollmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return &testEnv{
		db:                db,
		jwtService:        jwtService,
		authUsecase:       NewAuthUsecase(db, log, userRepo, auditService, jwtService, redisClient),
		clientUsecase:     NewClientUsecase(db, log, clientRepo, enrollmentRepo, auditService),
		programUsecase:    NewProgramUsecase(db, log, programRepo, auditService),
		enrollmentUsecase: NewEnrollmentUsecase(db, log, clientRepo, programRepo, enrollmentRepo, auditService),
		auditLogUsecase:   NewAuditLogUsecase(db, log, auditLogRepo),
	}
}
