package converter

import (
	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/domain/entity"
)

// ClientToResponse converts a Client entity plus its enrolled programs to a
// ClientResponse DTO. Programs is always a non-nil slice in the response.
func ClientToResponse(client *entity.Client, programs []entity.HealthProgram) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:             client.ID,
		FirstName:      client.FirstName,
		LastName:       client.LastName,
		DateOfBirth:    client.DateOfBirth.Format("2006-01-02"),
		Gender:         client.Gender,
		ContactNumber:  client.ContactNumber,
		Email:          client.Email,
		Address:        client.Address,
		MedicalHistory: client.MedicalHistory,
		CreatedAt:      client.CreatedAt,
		Programs:       ProgramsToResponses(programs),
	}
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, *ClientToResponse(&clients[i], nil))
	}
	return responses
}
