package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"techfestbackend/internal/delivery/http/helpers"
	"techfestbackend/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the request body for POST /api/register.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Phone            string   `json:"phone"`
	AffiliationType  string   `json:"affiliation_type"`
	InstitutionName  string   `json:"institution_name"`
	InterestedEvents []string `json:"interested_events"`
	AgreedToTerms    bool     `json:"agreed_to_terms"`
}

func (r *RegisterRequest) toInput() domain.RegistrationInput {
	return domain.RegistrationInput{
		Email:            r.Email,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Phone:            r.Phone,
		AffiliationType:  r.AffiliationType,
		InstitutionName:  r.InstitutionName,
		InterestedEvents: r.InterestedEvents,
		AgreedToTerms:    r.AgreedToTerms,
	}
}

// RegisterSuccessResponse is the success response envelope for POST /api/register (201).
type RegisterSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Register godoc
// @Summary Submit an attendee registration
// @Description Validates the submission, rejects duplicate emails, allocates the next sequential registration ID (e.g. BTF25-000042), stores the record, and sends a confirmation email out-of-band.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Registration fields"
// @Success 201 {object} controllers.RegisterSuccessResponse "Registration created; data.registration_id holds the allocated identifier"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (error.fields lists every invalid field) or duplicate_registration"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
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
			// Business rejection, not a fault: no error log.
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeDuplicate, "this email is already registered")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not store registration")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// PublicRegistration is the public subset of a registration returned by lookup.
// swagger:model PublicRegistration
type PublicRegistration struct {
	RegistrationID   string   `json:"registration_id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	InterestedEvents []string `json:"interested_events"`
}

// LookupSuccessResponse is the success response envelope for GET /api/registrations/{id} (200).
type LookupSuccessResponse struct {
	Data  *PublicRegistration `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// Lookup godoc
// @Summary Look up a registration by its registration ID
// @Description Returns the public subset of the registration with the given identifier (e.g. BTF25-000007). The identifier is looked up as-is; format is not validated.
// @Tags registration
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} controllers.LookupSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations/{id} [get]
func (c *RegistrationController) Lookup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}

	reg, err := c.Service.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load registration")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, &PublicRegistration{
		RegistrationID:   reg.RegistrationID,
		Email:            reg.Email,
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		InterestedEvents: reg.InterestedEvents,
	})
}
