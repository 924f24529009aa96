package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"schedlink/internal/delivery/http/helpers"
	"schedlink/internal/delivery/http/middleware"
	"schedlink/internal/domain"
)

type EventTypeController struct {
	Logger  *slog.Logger
	Service domain.EventTypeService
}

func NewEventTypeController(logger *slog.Logger, svc domain.EventTypeService) *EventTypeController {
	return &EventTypeController{Logger: logger, Service: svc}
}

// CreateEventTypeRequest is the request body for POST /events.
type CreateEventTypeRequest struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	DurationMinutes      int    `json:"duration_minutes"`
	LocationType         string `json:"location_type"`
	CustomURL            string `json:"custom_url"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	MinBookingNotice     int    `json:"min_booking_notice"`
	BufferTime           int    `json:"buffer_time"`
	DailyLimit           int    `json:"daily_limit"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// Validate implements helpers.Validator.
func (c CreateEventTypeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must not be negative")
	}
	if c.MinBookingNotice < 0 {
		errs = append(errs, "min_booking_notice must not be negative")
	}
	if c.BufferTime < 0 {
		errs = append(errs, "buffer_time must not be negative")
	}
	if c.DailyLimit < 0 {
		errs = append(errs, "daily_limit must not be negative")
	}
	return errs
}

// Create godoc
// @Summary Create an event type
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateEventTypeRequest true "Event type"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (custom url taken)"
// @Router /events [post]
func (c *EventTypeController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}

	var req CreateEventTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	et := &domain.EventType{
		OwnerID:              userID,
		Name:                 req.Name,
		Description:          req.Description,
		DurationMinutes:      req.DurationMinutes,
		LocationType:         req.LocationType,
		CustomURL:            req.CustomURL,
		RequiresConfirmation: req.RequiresConfirmation,
		MinBookingNotice:     req.MinBookingNotice,
		BufferTime:           req.BufferTime,
		DailyLimit:           req.DailyLimit,
		NotificationsEnabled: req.NotificationsEnabled,
	}
	if err := c.Service.Create(r.Context(), et); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, et)
}

// Get godoc
// @Summary Get an event type by id
// @Description Public endpoint used by the booking page. A non-numeric id is treated as not found.
// @Tags events
// @Produce json
// @Param id path string true "Event type id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [get]
func (c *EventTypeController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	et, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, et)
}

// List godoc
// @Summary List the authenticated host's event types
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [get]
func (c *EventTypeController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}

	list, err := c.Service.ListByOwnerID(r.Context(), userID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateEventTypeRequest is the request body for PATCH /events/{id}.
// Absent fields are left unchanged.
type UpdateEventTypeRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	DurationMinutes      *int    `json:"duration_minutes"`
	LocationType         *string `json:"location_type"`
	CustomURL            *string `json:"custom_url"`
	RequiresConfirmation *bool   `json:"requires_confirmation"`
	MinBookingNotice     *int    `json:"min_booking_notice"`
	BufferTime           *int    `json:"buffer_time"`
	DailyLimit           *int    `json:"daily_limit"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

// Validate implements helpers.Validator.
func (u UpdateEventTypeRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.DurationMinutes != nil && *u.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be positive")
	}
	return errs
}

// Update godoc
// @Summary Update an event type
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event type id"
// @Param body body controllers.UpdateEventTypeRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (custom url taken)"
// @Router /events/{id} [patch]
func (c *EventTypeController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	var req UpdateEventTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	update := domain.EventTypeUpdate{
		Name:                 req.Name,
		Description:          req.Description,
		DurationMinutes:      req.DurationMinutes,
		LocationType:         req.LocationType,
		CustomURL:            req.CustomURL,
		RequiresConfirmation: req.RequiresConfirmation,
		MinBookingNotice:     req.MinBookingNotice,
		BufferTime:           req.BufferTime,
		DailyLimit:           req.DailyLimit,
		NotificationsEnabled: req.NotificationsEnabled,
	}
	et, err := c.Service.Update(r.Context(), id, userID, &update)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, et)
}

// Delete godoc
// @Summary Delete an event type
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event type id"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [delete]
func (c *EventTypeController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	if err := c.Service.Delete(r.Context(), id, userID); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ValidateURL godoc
// @Summary Check availability of a custom booking URL
// @Description Returns valid=false with a message when the url is malformed or taken.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param url query string true "Candidate custom url"
// @Success 200 {object} helpers.APIResponse "data contains valid and message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events/validate-url [get]
func (c *EventTypeController) ValidateURL(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if strings.TrimSpace(raw) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "url query parameter is required")
		return
	}

	result, err := c.Service.ValidateURL(r.Context(), raw)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

func (c *EventTypeController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not the owner of this event")
	case errors.Is(err, domain.ErrDuplicateURL):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "custom url is already taken")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
