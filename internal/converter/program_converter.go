package converter

import (
	"time"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/domain/entity"
)

// ProgramToResponse converts a HealthProgram entity to a ProgramResponse DTO.
// Absent start/end dates serialize as null.
func ProgramToResponse(program *entity.HealthProgram) *dto.ProgramResponse {
	if program == nil {
		return nil
	}

	return &dto.ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
		StartDate:   formatDate(program.StartDate),
		EndDate:     formatDate(program.EndDate),
		Status:      program.Status,
		CreatedAt:   program.CreatedAt,
	}
}

func ProgramsToResponses(programs []entity.HealthProgram) []dto.ProgramResponse {
	responses := make([]dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, *ProgramToResponse(&programs[i]))
	}
	return responses
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
