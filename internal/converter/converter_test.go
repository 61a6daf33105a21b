package converter

import (
	"testing"
	"time"

	"health-program-registry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientToResponse(t *testing.T) {
	client := &entity.Client{
		ID:          uuid.New(),
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:      "Female",
	}
	programs := []entity.HealthProgram{
		{ID: 1, Name: "HIV", Status: entity.ProgramStatusActive},
	}

	resp := ClientToResponse(client, programs)
	require.NotNil(t, resp)
	assert.Equal(t, client.ID, resp.ID)
	assert.Equal(t, "1985-05-15", resp.DateOfBirth)
	require.Len(t, resp.Programs, 1)
	assert.Equal(t, "HIV", resp.Programs[0].Name)
}

func TestClientToResponseNoPrograms(t *testing.T) {
	client := &entity.Client{
		ID:          uuid.New(),
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:      "Female",
	}

	resp := ClientToResponse(client, nil)
	require.NotNil(t, resp)
	// Programs serializes as an empty array, never null.
	assert.NotNil(t, resp.Programs)
	assert.Empty(t, resp.Programs)
}

func TestClientToResponseNil(t *testing.T) {
	assert.Nil(t, ClientToResponse(nil, nil))
}

func TestProgramToResponseDates(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	program := &entity.HealthProgram{
		ID:        1,
		Name:      "TB Outreach",
		StartDate: &start,
		Status:    entity.ProgramStatusActive,
	}

	resp := ProgramToResponse(program)
	require.NotNil(t, resp)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2026-01-01", *resp.StartDate)
	assert.Nil(t, resp.EndDate)
}

func TestUserToResponseOmitsPasswordHash(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "secret-hash",
		Role:         entity.RoleDoctor,
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp)
	assert.Equal(t, "testuser", resp.Username)
	assert.Equal(t, entity.RoleDoctor, resp.Role)
}
