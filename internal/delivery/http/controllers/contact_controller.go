package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"schedlink/internal/delivery/http/helpers"
	"schedlink/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// CreateContactRequest is the request body for POST /contacts.
// It is exactly what the booking page submits on registration.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (c CreateContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// Create godoc
// @Summary Register a contact
// @Description Public endpoint used by the booking page. Registering an email that already exists returns 409.
// @Tags contacts
// @Accept json
// @Produce json
// @Param body body controllers.CreateContactRequest true "Guest details"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Router /contacts [post]
func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	contact, err := c.Service.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, contact)
}

// ContactListResponse is the response body for GET /contacts.
type ContactListResponse struct {
	Contacts   []*domain.Contact      `json:"contacts"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /contacts [get]
func (c *ContactController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)

	page, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ContactListResponse{
		Contacts:   page.Items,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, page.Total),
	})
}
