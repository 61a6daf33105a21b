package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/usecase"
	"health-program-registry/pkg/response"
	"health-program-registry/pkg/validator"

	"github.com/gorilla/mux"
)

type ProgramHandler struct {
	programUsecase usecase.ProgramUsecase
	validator      *validator.CustomValidator
}

func NewProgramHandler(programUsecase usecase.ProgramUsecase, validator *validator.CustomValidator) *ProgramHandler {
	return &ProgramHandler{
		programUsecase: programUsecase,
		validator:      validator,
	}
}

func (h *ProgramHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	program, err := h.programUsecase.CreateProgram(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProgramNameTaken:
			response.Error(w, http.StatusBadRequest, "Program with this name already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create program")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Program created successfully", program)
}

func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	programID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program id", nil)
		return
	}

	program, err := h.programUsecase.GetProgram(r.Context(), programID)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Program not found")
		default:
			response.InternalServerError(w, "Failed to get program")
		}
		return
	}

	response.Success(w, http.StatusOK, "", program)
}

func (h *ProgramHandler) GetAllPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programUsecase.GetAllPrograms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get programs")
		return
	}

	response.Success(w, http.StatusOK, "", programs)
}

func (h *ProgramHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	programID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program id", nil)
		return
	}

	var req dto.UpdateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	program, err := h.programUsecase.UpdateProgram(r.Context(), programID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Program not found")
		case usecase.ErrProgramNameTaken:
			response.Error(w, http.StatusBadRequest, "Program with this name already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update program")
		}
		return
	}

	response.Success(w, http.StatusOK, "Program updated successfully", program)
}
