package usecase

import (
	"context"
	"testing"

	"health-program-registry/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateAndGetClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
		FirstName:      "Jane",
		LastName:       "Smith",
		DateOfBirth:    "1985-05-15",
		Gender:         "Female",
		ContactNumber:  "0712345678",
		Email:          "jane.smith@example.com",
		Address:        "12 Riverside Drive",
		MedicalHistory: "None",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Smith", created.LastName)
	assert.Equal(t, "1985-05-15", created.DateOfBirth)
	assert.Equal(t, "Female", created.Gender)

	fetched, err := env.clientUsecase.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "1985-05-15", fetched.DateOfBirth)
	assert.Equal(t, "jane.smith@example.com", fetched.Email)
	assert.NotNil(t, fetched.Programs)
	assert.Empty(t, fetched.Programs)
}

func TestCreateClientInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clientUsecase.CreateClient(context.Background(), &dto.CreateClientRequest{
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "15/05/1985",
		Gender:      "Female",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestGetClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clientUsecase.GetClient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetAllClients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
			FirstName:   name,
			LastName:    "Example",
			DateOfBirth: "1990-01-01",
			Gender:      "Other",
		})
		require.NoError(t, err)
	}

	list, err := env.clientUsecase.GetAllClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Clients, 3)
}

func TestSearchClients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
		FirstName:   "Test",
		LastName:    "User",
		DateOfBirth: "1990-01-01",
		Gender:      "Male",
	})
	require.NoError(t, err)

	_, err = env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "1985-05-15",
		Gender:      "Female",
	})
	require.NoError(t, err)

	result, err := env.clientUsecase.SearchClients(ctx, "Test")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Test", result.Clients[0].FirstName)

	// Case-insensitive, matches last name too.
	result, err = env.clientUsecase.SearchClients(ctx, "smith")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Jane", result.Clients[0].FirstName)

	result, err = env.clientUsecase.SearchClients(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
}

func TestSearchClientsEmptyQueryMatchesAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob"} {
		_, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
			FirstName:   name,
			LastName:    "Example",
			DateOfBirth: "1990-01-01",
			Gender:      "Other",
		})
		require.NoError(t, err)
	}

	result, err := env.clientUsecase.SearchClients(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestUpdateClientPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
		FirstName:     "Jane",
		LastName:      "Smith",
		DateOfBirth:   "1985-05-15",
		Gender:        "Female",
		ContactNumber: "0712345678",
	})
	require.NoError(t, err)

	updated, err := env.clientUsecase.UpdateClient(ctx, created.ID, &dto.UpdateClientRequest{
		ContactNumber:  strPtr("0799999999"),
		MedicalHistory: strPtr("Asthma"),
	})
	require.NoError(t, err)

	// Only the provided fields change.
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "1985-05-15", updated.DateOfBirth)
	assert.Equal(t, "0799999999", updated.ContactNumber)
	assert.Equal(t, "Asthma", updated.MedicalHistory)

	fetched, err := env.clientUsecase.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "0799999999", fetched.ContactNumber)
	assert.Equal(t, "Asthma", fetched.MedicalHistory)
}

func TestUpdateClientInvalidDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.clientUsecase.CreateClient(ctx, &dto.CreateClientRequest{
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "1985-05-15",
		Gender:      "Female",
	})
	require.NoError(t, err)

	_, err = env.clientUsecase.UpdateClient(ctx, created.ID, &dto.UpdateClientRequest{
		DateOfBirth: strPtr("not-a-date"),
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	fetched, err := env.clientUsecase.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1985-05-15", fetched.DateOfBirth)
}

func TestUpdateClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clientUsecase.UpdateClient(context.Background(), uuid.New(), &dto.UpdateClientRequest{
		FirstName: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
