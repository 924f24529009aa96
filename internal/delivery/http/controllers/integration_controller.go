package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"schedlink/internal/delivery/http/helpers"
	"schedlink/internal/delivery/http/middleware"
	"schedlink/internal/domain"
)

type IntegrationController struct {
	Logger  *slog.Logger
	Service domain.IntegrationService
}

func NewIntegrationController(logger *slog.Logger, svc domain.IntegrationService) *IntegrationController {
	return &IntegrationController{Logger: logger, Service: svc}
}

// AuthStart godoc
// @Summary Start connecting a calendar or conferencing provider
// @Description Returns the provider authorization URL the browser should be sent to.
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider" Enums(google, zoom, teams)
// @Success 200 {object} helpers.APIResponse "data contains auth_url"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown provider)"
// @Router /integrations/{provider}/auth [post]
func (c *IntegrationController) AuthStart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}
	provider := r.PathValue("provider")

	authURL, err := c.Service.AuthStart(r.Context(), userID, provider)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

// AuthCallback godoc
// @Summary Complete a provider connection
// @Description Called by the provider redirect with code and state query parameters.
// @Tags integrations
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state issued by AuthStart"
// @Success 200 {object} helpers.APIResponse "data contains the connected integration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (bad or expired state)"
// @Router /integrations/callback [get]
func (c *IntegrationController) AuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "code and state query parameters are required")
		return
	}

	integration, err := c.Service.AuthCallback(r.Context(), code, state)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, integration)
}

// Disconnect godoc
// @Summary Disconnect a provider
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider" Enums(google, zoom, teams)
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not connected)"
// @Router /integrations/{provider} [delete]
func (c *IntegrationController) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}
	provider := r.PathValue("provider")

	integration, err := c.Service.Disconnect(r.Context(), userID, provider)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, integration)
}

// List godoc
// @Summary List the authenticated host's integrations
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /integrations [get]
func (c *IntegrationController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}

	list, err := c.Service.List(r.Context(), userID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

func (c *IntegrationController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "provider is not connected")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "integration not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
