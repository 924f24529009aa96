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

type QuestionController struct {
	Logger  *slog.Logger
	Service domain.EventQuestionService
}

func NewQuestionController(logger *slog.Logger, svc domain.EventQuestionService) *QuestionController {
	return &QuestionController{Logger: logger, Service: svc}
}

// QuestionDraft is a single question in a ReplaceQuestionsRequest.
type QuestionDraft struct {
	Question   string `json:"question"`
	IsRequired bool   `json:"is_required"`
}

// ReplaceQuestionsRequest is the request body for POST /events/{id}/questions.
// The full question list replaces whatever was stored before; order follows
// the order of the array.
type ReplaceQuestionsRequest struct {
	Questions []QuestionDraft `json:"questions"`
}

// Validate implements helpers.Validator.
func (q ReplaceQuestionsRequest) Validate() []string {
	var errs []string
	for i, d := range q.Questions {
		if strings.TrimSpace(d.Question) == "" {
			errs = append(errs, "questions["+strconv.Itoa(i)+"].question is required")
		}
	}
	return errs
}

// Replace godoc
// @Summary Replace the questions of an event type
// @Description Deletes the stored questions and saves the submitted list in order.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event type id"
// @Param body body controllers.ReplaceQuestionsRequest true "Question list"
// @Success 200 {object} helpers.APIResponse "data contains the saved questions"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id}/questions [post]
func (c *QuestionController) Replace(w http.ResponseWriter, r *http.Request) {
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

	var req ReplaceQuestionsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	drafts := make([]*domain.EventQuestion, 0, len(req.Questions))
	for _, d := range req.Questions {
		drafts = append(drafts, &domain.EventQuestion{
			EventTypeID: id,
			Question:    d.Question,
			IsRequired:  d.IsRequired,
		})
	}

	saved, err := c.Service.ReplaceForEventType(r.Context(), id, userID, drafts)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}

// List godoc
// @Summary List the questions of an event type
// @Description Public endpoint used by the booking page. Questions come back in ascending order.
// @Tags questions
// @Produce json
// @Param id path int true "Event type id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id}/questions [get]
func (c *QuestionController) List(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	questions, err := c.Service.ListByEventTypeID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, questions)
}

func (c *QuestionController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not the owner of this event")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
