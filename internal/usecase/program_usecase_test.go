package usecase

import (
	"context"
	"testing"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProgram(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{
		Name:        "TB Outreach",
		Description: "Tuberculosis screening and treatment",
		StartDate:   "2026-01-01",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "TB Outreach", created.Name)
	assert.Equal(t, entity.ProgramStatusActive, created.Status)
	require.NotNil(t, created.StartDate)
	assert.Equal(t, "2026-01-01", *created.StartDate)
	assert.Nil(t, created.EndDate)

	fetched, err := env.programUsecase.GetProgram(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "TB Outreach", fetched.Name)
}

func TestCreateProgramDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{Name: "HIV"})
	require.NoError(t, err)

	_, err = env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{Name: "HIV"})
	assert.ErrorIs(t, err, ErrProgramNameTaken)

	list, err := env.programUsecase.GetAllPrograms(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestCreateProgramInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.programUsecase.CreateProgram(context.Background(), &dto.CreateProgramRequest{
		Name:      "Malaria",
		StartDate: "01-01-2026",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestGetProgramNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.programUsecase.GetProgram(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestUpdateProgramPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{
		Name:      "Malaria",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)

	updated, err := env.programUsecase.UpdateProgram(ctx, created.ID, &dto.UpdateProgramRequest{
		Description: strPtr("Seasonal malaria campaign"),
		Status:      strPtr(entity.ProgramStatusInactive),
	})
	require.NoError(t, err)

	assert.Equal(t, "Malaria", updated.Name)
	assert.Equal(t, "Seasonal malaria campaign", updated.Description)
	assert.Equal(t, entity.ProgramStatusInactive, updated.Status)
	require.NotNil(t, updated.StartDate)
	assert.Equal(t, "2026-01-01", *updated.StartDate)
}

func TestUpdateProgramClearsDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{
		Name:    "Malaria",
		EndDate: "2026-06-30",
	})
	require.NoError(t, err)
	require.NotNil(t, created.EndDate)

	updated, err := env.programUsecase.UpdateProgram(ctx, created.ID, &dto.UpdateProgramRequest{
		EndDate: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
}

func TestUpdateProgramNameCollision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{Name: "HIV"})
	require.NoError(t, err)

	second, err := env.programUsecase.CreateProgram(ctx, &dto.CreateProgramRequest{Name: "Malaria"})
	require.NoError(t, err)

	_, err = env.programUsecase.UpdateProgram(ctx, second.ID, &dto.UpdateProgramRequest{
		Name: strPtr("HIV"),
	})
	assert.ErrorIs(t, err, ErrProgramNameTaken)
}

func TestUpdateProgramNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.programUsecase.UpdateProgram(context.Background(), 42, &dto.UpdateProgramRequest{
		Name: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, ErrProgramNotFound)
}
