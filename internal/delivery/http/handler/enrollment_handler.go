package handler

import (
	"net/http"
	"strconv"

	"health-program-registry/internal/usecase"
	"health-program-registry/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
}

func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentUsecase: enrollmentUsecase}
}

func (h *EnrollmentHandler) EnrollClient(w http.ResponseWriter, r *http.Request) {
	clientID, programID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	if err := h.enrollmentUsecase.Enroll(r.Context(), clientID, programID); err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Program not found")
		case usecase.ErrAlreadyEnrolled:
			response.Error(w, http.StatusBadRequest, "Client is already enrolled in this program", nil)
		default:
			response.InternalServerError(w, "Failed to enroll client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client enrolled successfully", nil)
}

func (h *EnrollmentHandler) UnenrollClient(w http.ResponseWriter, r *http.Request) {
	clientID, programID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	if err := h.enrollmentUsecase.Unenroll(r.Context(), clientID, programID); err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Program not found")
		case usecase.ErrNotEnrolled:
			response.Error(w, http.StatusBadRequest, "Client is not enrolled in this program", nil)
		default:
			response.InternalServerError(w, "Failed to unenroll client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client unenrolled successfully", nil)
}

func (h *EnrollmentHandler) GetClientPrograms(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client id", nil)
		return
	}

	programs, err := h.enrollmentUsecase.GetClientPrograms(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get client programs")
		return
	}

	response.Success(w, http.StatusOK, "", programs)
}

func (h *EnrollmentHandler) GetProgramClients(w http.ResponseWriter, r *http.Request) {
	programID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program id", nil)
		return
	}

	clients, err := h.enrollmentUsecase.GetProgramClients(r.Context(), programID)
	if err != nil {
		response.InternalServerError(w, "Failed to get program clients")
		return
	}

	response.Success(w, http.StatusOK, "", clients)
}

func (h *EnrollmentHandler) parseIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	vars := mux.Vars(r)

	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client id", nil)
		return uuid.Nil, 0, false
	}

	programID, err := strconv.Atoi(vars["programId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program id", nil)
		return uuid.Nil, 0, false
	}

	return clientID, programID, true
}
