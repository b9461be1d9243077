package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"techfestbackend/internal/delivery/http/helpers"
	"techfestbackend/internal/domain"
)

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

// TeamRegisterRequest is the request body for POST /api/teams/register.
// swagger:model TeamRegisterRequest
type TeamRegisterRequest struct {
	TeamName         string `json:"team_name"`
	ContactEmail     string `json:"contact_email"`
	ContactFirstName string `json:"contact_first_name"`
	ContactLastName  string `json:"contact_last_name"`
	ContactPhone     string `json:"contact_phone"`
	MemberCount      int    `json:"member_count"`
	AgreedToTerms    bool   `json:"agreed_to_terms"`
}

func (r *TeamRegisterRequest) toInput() domain.TeamRegistrationInput {
	return domain.TeamRegistrationInput{
		TeamName:         r.TeamName,
		ContactEmail:     r.ContactEmail,
		ContactFirstName: r.ContactFirstName,
		ContactLastName:  r.ContactLastName,
		ContactPhone:     r.ContactPhone,
		MemberCount:      r.MemberCount,
		AgreedToTerms:    r.AgreedToTerms,
	}
}

// TeamRegisterSuccessResponse is the success response envelope for POST /api/teams/register (201).
type TeamRegisterSuccessResponse struct {
	Data  *domain.TeamRegistration `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// Register godoc
// @Summary Submit a team registration
// @Description Validates the submission, rejects duplicate contact emails, allocates the next sequential team registration ID (own counter scope), and stores the record.
// @Tags team
// @Accept json
// @Produce json
// @Param body body controllers.TeamRegisterRequest true "Team registration fields"
// @Success 201 {object} controllers.TeamRegisterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or duplicate_registration"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/teams/register [post]
func (c *TeamController) Register(w http.ResponseWriter, r *http.Request) {
	var req TeamRegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.Register(r.Context(), req.toInput())
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			helpers.WriteValidationError(w, vErr)
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeDuplicate, "this contact email already registered a team")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not store team registration")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// LookupTeamSuccessResponse is the success response envelope for GET /api/teams/registrations/{id} (200).
type LookupTeamSuccessResponse struct {
	Data  *domain.TeamRegistration `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// Lookup godoc
// @Summary Look up a team registration by its registration ID
// @Tags team
// @Produce json
// @Param id path string true "Team registration ID"
// @Success 200 {object} controllers.LookupTeamSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/teams/registrations/{id} [get]
func (c *TeamController) Lookup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}

	reg, err := c.Service.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load team registration")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}
