package usecase

import (
	"context"
	"testing"

	"health-program-registry/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) createClient(t *testing.T, firstName, lastName string) uuid.UUID {
	t.Helper()
	client, err := env.clientUsecase.CreateClient(context.Background(), &dto.CreateClientRequest{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: "1985-05-15",
		Gender:      "Female",
	})
	require.NoError(t, err)
	return client.ID
}

func (env *testEnv) createProgram(t *testing.T, name string) int {
	t.Helper()
	program, err := env.programUsecase.CreateProgram(context.Background(), &dto.CreateProgramRequest{Name: name})
	require.NoError(t, err)
	return program.ID
}

func TestEnrollAndGetClientPrograms(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")
	hivID := env.createProgram(t, "HIV")
	malariaID := env.createProgram(t, "Malaria")

	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, hivID))
	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, malariaID))

	programs, err := env.enrollmentUsecase.GetClientPrograms(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, 2, programs.Total)

	names := []string{programs.Programs[0].Name, programs.Programs[1].Name}
	assert.ElementsMatch(t, []string{"HIV", "Malaria"}, names)

	// The client profile embeds the same program list.
	client, err := env.clientUsecase.GetClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, client.Programs, 2)
}

func TestEnrollTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")
	programID := env.createProgram(t, "HIV")

	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, programID))

	err := env.enrollmentUsecase.Enroll(ctx, clientID, programID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// The program appears exactly once.
	programs, err := env.enrollmentUsecase.GetClientPrograms(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, 1, programs.Total)
}

func TestEnrollNonexistentClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	programID := env.createProgram(t, "HIV")

	err := env.enrollmentUsecase.Enroll(ctx, uuid.New(), programID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	clients, err := env.enrollmentUsecase.GetProgramClients(ctx, programID)
	require.NoError(t, err)
	assert.Equal(t, 0, clients.Total)
}

func TestEnrollNonexistentProgram(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")

	err := env.enrollmentUsecase.Enroll(ctx, clientID, 42)
	assert.ErrorIs(t, err, ErrProgramNotFound)

	programs, err := env.enrollmentUsecase.GetClientPrograms(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, 0, programs.Total)
}

func TestUnenroll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")
	hivID := env.createProgram(t, "HIV")
	malariaID := env.createProgram(t, "Malaria")

	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, hivID))
	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, malariaID))

	require.NoError(t, env.enrollmentUsecase.Unenroll(ctx, clientID, hivID))

	programs, err := env.enrollmentUsecase.GetClientPrograms(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, 1, programs.Total)
	assert.Equal(t, "Malaria", programs.Programs[0].Name)

	// The pair is back to NotEnrolled, so enrolling again succeeds.
	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, clientID, hivID))
}

func TestUnenrollNotEnrolled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")
	programID := env.createProgram(t, "HIV")

	err := env.enrollmentUsecase.Unenroll(ctx, clientID, programID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestUnenrollNonexistentEntities(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clientID := env.createClient(t, "Jane", "Smith")
	programID := env.createProgram(t, "HIV")

	err := env.enrollmentUsecase.Unenroll(ctx, uuid.New(), programID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	err = env.enrollmentUsecase.Unenroll(ctx, clientID, 42)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestGetProgramClients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	janeID := env.createClient(t, "Jane", "Smith")
	bobID := env.createClient(t, "Bob", "Jones")
	programID := env.createProgram(t, "HIV")

	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, janeID, programID))
	require.NoError(t, env.enrollmentUsecase.Enroll(ctx, bobID, programID))

	clients, err := env.enrollmentUsecase.GetProgramClients(ctx, programID)
	require.NoError(t, err)
	require.Equal(t, 2, clients.Total)

	names := []string{clients.Clients[0].FirstName, clients.Clients[1].FirstName}
	assert.ElementsMatch(t, []string{"Jane", "Bob"}, names)
}

func TestGetClientProgramsUnknownClient(t *testing.T) {
	env := newTestEnv(t)

	programs, err := env.enrollmentUsecase.GetClientPrograms(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, programs.Total)
	assert.NotNil(t, programs.Programs)
}

func TestGetProgramClientsUnknownProgram(t *testing.T) {
	env := newTestEnv(t)

	clients, err := env.enrollmentUsecase.GetProgramClients(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0, clients.Total)
	assert.NotNil(t, clients.Clients)
}
