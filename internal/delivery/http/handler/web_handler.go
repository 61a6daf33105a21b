package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"health-program-registry/internal/delivery/dto"
	"health-program-registry/internal/delivery/http/middleware"
	"health-program-registry/internal/delivery/web"
	"health-program-registry/internal/service"
	"health-program-registry/internal/usecase"
	"health-program-registry/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// WebHandler serves the session-authenticated server-rendered interface.
type WebHandler struct {
	log               *logrus.Logger
	renderer          *web.Renderer
	validator         *validator.CustomValidator
	authUsecase       usecase.AuthUsecase
	sessionService    *service.SessionService
	clientUsecase     usecase.ClientUsecase
	programUsecase    usecase.ProgramUsecase
	enrollmentUsecase usecase.EnrollmentUsecase
}

func NewWebHandler(
	log *logrus.Logger,
	renderer *web.Renderer,
	validator *validator.CustomValidator,
	authUsecase usecase.AuthUsecase,
	sessionService *service.SessionService,
	clientUsecase usecase.ClientUsecase,
	programUsecase usecase.ProgramUsecase,
	enrollmentUsecase usecase.EnrollmentUsecase,
) *WebHandler {
	return &WebHandler{
		log:               log,
		renderer:          renderer,
		validator:         validator,
		authUsecase:       authUsecase,
		sessionService:    sessionService,
		clientUsecase:     clientUsecase,
		programUsecase:    programUsecase,
		enrollmentUsecase: enrollmentUsecase,
	}
}

type loginPage struct {
	Flash string
}

type indexPage struct {
	Flash        string
	ClientCount  int
	ProgramCount int
}

type clientsPage struct {
	Flash   string
	Clients []dto.ClientResponse
}

type clientDetailPage struct {
	Flash    string
	Client   *dto.ClientResponse
	Programs []dto.ProgramResponse
}

type clientSearchPage struct {
	Flash   string
	Query   string
	Clients []dto.ClientResponse
}

type programsPage struct {
	Flash    string
	Programs []dto.ProgramResponse
}

type clientFormPage struct {
	Flash string
}

type programFormPage struct {
	Flash string
}

func (h *WebHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login", loginPage{Flash: flashFrom(r)})
}

func (h *WebHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	user, err := h.authUsecase.Authenticate(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			h.renderer.Render(w, "login", loginPage{Flash: "Invalid username or password"})
			return
		}
		http.Error(w, "Failed to login", http.StatusInternalServerError)
		return
	}

	token, err := h.sessionService.Create(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionService.Expiry() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WebHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.sessionService.Destroy(r.Context(), cookie.Value); err != nil {
			h.log.Warnf("Failed to destroy session: %+v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Flash: flashFrom(r)}

	if clients, err := h.clientUsecase.GetAllClients(r.Context()); err == nil {
		page.ClientCount = clients.Total
	}
	if programs, err := h.programUsecase.GetAllPrograms(r.Context()); err == nil {
		page.ProgramCount = programs.Total
	}

	h.renderer.Render(w, "index", page)
}

func (h *WebHandler) Clients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		http.Error(w, "Failed to load clients", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "clients", clientsPage{
		Flash:   flashFrom(r),
		Clients: clients.Clients,
	})
}

func (h *WebHandler) NewClientForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "client_form", clientFormPage{Flash: flashFrom(r)})
}

func (h *WebHandler) NewClient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := dto.CreateClientRequest{
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		DateOfBirth:    r.FormValue("date_of_birth"),
		Gender:         r.FormValue("gender"),
		ContactNumber:  r.FormValue("contact_number"),
		Email:          r.FormValue("email"),
		Address:        r.FormValue("address"),
		MedicalHistory: r.FormValue("medical_history"),
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderer.Render(w, "client_form", clientFormPage{Flash: "Please fill in all required fields with valid values"})
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		h.renderer.Render(w, "client_form", clientFormPage{Flash: "Failed to create client"})
		return
	}

	redirectWithFlash(w, r, "/clients/"+client.ID.String(), "Client created successfully")
}

func (h *WebHandler) ClientDetail(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		redirectWithFlash(w, r, "/clients", "Client not found")
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), clientID)
	if err != nil {
		redirectWithFlash(w, r, "/clients", "Client not found")
		return
	}

	programs, err := h.programUsecase.GetAllPrograms(r.Context())
	if err != nil {
		http.Error(w, "Failed to load programs", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "client_detail", clientDetailPage{
		Flash:    flashFrom(r),
		Client:   client,
		Programs: programs.Programs,
	})
}

// SearchClients renders results only when a query was given; the service
// itself would match everything on an empty query.
func (h *WebHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := clientSearchPage{Flash: flashFrom(r), Query: query}
	if query != "" {
		clients, err := h.clientUsecase.SearchClients(r.Context(), query)
		if err != nil {
			http.Error(w, "Failed to search clients", http.StatusInternalServerError)
			return
		}
		page.Clients = clients.Clients
	}

	h.renderer.Render(w, "client_search", page)
}

func (h *WebHandler) Programs(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programUsecase.GetAllPrograms(r.Context())
	if err != nil {
		http.Error(w, "Failed to load programs", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "programs", programsPage{
		Flash:    flashFrom(r),
		Programs: programs.Programs,
	})
}

func (h *WebHandler) NewProgramForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "program_form", programFormPage{Flash: flashFrom(r)})
}

func (h *WebHandler) NewProgram(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := dto.CreateProgramRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderer.Render(w, "program_form", programFormPage{Flash: "Please fill in all required fields with valid values"})
		return
	}

	if _, err := h.programUsecase.CreateProgram(r.Context(), &req); err != nil {
		if err == usecase.ErrProgramNameTaken {
			h.renderer.Render(w, "program_form", programFormPage{Flash: "Program with this name already exists"})
			return
		}
		h.renderer.Render(w, "program_form", programFormPage{Flash: "Failed to create program"})
		return
	}

	redirectWithFlash(w, r, "/programs", "Program created successfully")
}

func (h *WebHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	clientID, programID, ok := h.parseEnrollmentForm(w, r)
	if !ok {
		return
	}

	flash := "Client enrolled successfully"
	if err := h.enrollmentUsecase.Enroll(r.Context(), clientID, programID); err != nil {
		flash = "Failed to enroll client"
	}

	redirectWithFlash(w, r, "/clients/"+clientID.String(), flash)
}

func (h *WebHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	clientID, programID, ok := h.parseEnrollmentForm(w, r)
	if !ok {
		return
	}

	flash := "Client unenrolled successfully"
	if err := h.enrollmentUsecase.Unenroll(r.Context(), clientID, programID); err != nil {
		flash = "Failed to unenroll client"
	}

	redirectWithFlash(w, r, "/clients/"+clientID.String(), flash)
}

func (h *WebHandler) parseEnrollmentForm(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return uuid.Nil, 0, false
	}

	clientID, err := uuid.Parse(r.FormValue("client_id"))
	if err != nil {
		redirectWithFlash(w, r, "/clients", "Client not found")
		return uuid.Nil, 0, false
	}

	programID, err := strconv.Atoi(r.FormValue("program_id"))
	if err != nil {
		redirectWithFlash(w, r, "/clients/"+clientID.String(), "Program not found")
		return uuid.Nil, 0, false
	}

	return clientID, programID, true
}

// Flash messages travel by query parameter across redirects; there is no
// server-side flash store.
func flashFrom(r *http.Request) string {
	return r.URL.Query().Get("flash")
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, flash string) {
	http.Redirect(w, r, path+"?flash="+url.QueryEscape(flash), http.StatusSeeOther)
}
