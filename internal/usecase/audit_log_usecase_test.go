package usecase

import (
	"context"
	"testing"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/delivery/http/middleware"
	"health-program-registry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authUsecase.Register(ctx, &dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	clientID := env.createClient(t, "Jane", "Smith")
	programID := env.createProgram(t, "HIV")
	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, programID))
	require.NoError(t, env.enrollmentUsecase.Unenroll(ctx, clientID, programID))

	logs, err := env.auditLogUsecase.GetRecentAuditLogs(ctx, 50)
	require.NoError(t, err)
	require.Equal(t, 5, logs.Total)

	actions := make([]string, 0, len(logs.AuditLogs))
	for _, entry := range logs.AuditLogs {
		actions = append(actions, entry.Action)
	}
	assert.ElementsMatch(t, []string{
		entity.AuditActionUserRegister,
		entity.AuditActionClientCreate,
		entity.AuditActionProgramCreate,
		entity.AuditActionClientEnroll,
		entity.AuditActionClientUnenroll,
	}, actions)
}

func TestAuditTrailLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createClient(t, "Jane", "Smith")
	env.createClient(t, "Bob", "Jones")
	env.createClient(t, "Carol", "White")

	logs, err := env.auditLogUsecase.GetRecentAuditLogs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, logs.Total)

	// Out-of-range limits fall back to the default.
	logs, err = env.auditLogUsecase.GetRecentAuditLogs(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, logs.Total)
}

func TestAuditMetadata(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")

	logs, err := env.auditLogUsecase.GetRecentAuditLogs(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 1, logs.Total)

	entry := logs.AuditLogs[0]
	assert.Equal(t, entity.AuditActionClientCreate, entry.Action)
	require.NotNil(t, entry.Metadata)
	assert.Equal(t, "client", entry.Metadata["entity"])
	assert.Equal(t, clientID.String(), entry.Metadata["entity_id"])
}

func TestAuditUserAttribution(t *testing.T) {
	env := newTestEnv(t)

	// No authenticated user in context: user_id stays NULL, not the zero uuid.
	env.createClient(t, "Jane", "Smith")

	logs, err := env.auditLogUsecase.GetRecentAuditLogs(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 1, logs.Total)
	assert.Nil(t, logs.AuditLogs[0].UserID)

	userID := uuid.New()
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)

	_, err = env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{Name: "HIV"})
	require.NoError(t, err)

	logs, err = env.auditLogUsecase.GetRecentAuditLogs(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 2, logs.Total)

	for _, entry := range logs.AuditLogs {
		if entry.Action == entity.AuditActionProgramCreate {
			require.NotNil(t, entry.UserID)
			assert.Equal(t, userID, *entry.UserID)
		}
	}
}
