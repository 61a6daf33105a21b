package handler

import (
	"encoding/json"
	"net/http"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/usecase"
	"health-program-registry/pkg/response"
	"health-program-registry/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create client")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client id", nil)
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), clientID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get client")
		}
		return
	}

	response.Success(w, http.StatusOK, "", client)
}

func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clients")
		return
	}

	response.Success(w, http.StatusOK, "", clients)
}

func (h *ClientHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	clients, err := h.clientUsecase.SearchClients(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to search clients")
		return
	}

	response.Success(w, http.StatusOK, "", clients)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client id", nil)
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}
