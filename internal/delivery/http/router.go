package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"schedlink/internal/delivery/http/controllers"
	"schedlink/internal/delivery/http/middleware"
	"schedlink/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	eventTypeController *controllers.EventTypeController,
	contactController *controllers.ContactController,
	questionController *controllers.QuestionController,
	integrationController *controllers.IntegrationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", authController.SignUp)
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Public booking endpoints
	mux.HandleFunc("GET /api/events/{id}", eventTypeController.Get)
	mux.HandleFunc("GET /api/events/{id}/questions", questionController.List)
	mux.HandleFunc("POST /api/contacts", contactController.Create)

	// Host event management
	mux.HandleFunc("POST /api/events", requireAuth(eventTypeController.Create))
	mux.HandleFunc("GET /api/events", requireAuth(eventTypeController.List))
	mux.HandleFunc("PATCH /api/events/{id}", requireAuth(eventTypeController.Update))
	mux.HandleFunc("DELETE /api/events/{id}", requireAuth(eventTypeController.Delete))
	mux.HandleFunc("GET /api/events/validate-url", requireAuth(eventTypeController.ValidateURL))
	mux.HandleFunc("POST /api/events/{id}/questions", requireAuth(questionController.Replace))

	// Contacts
	mux.HandleFunc("GET /api/contacts", requireAuth(contactController.List))

	// Integrations
	mux.HandleFunc("POST /api/integrations/{provider}/auth", requireAuth(integrationController.AuthStart))
	mux.HandleFunc("GET /api/integrations/callback", integrationController.AuthCallback)
	mux.HandleFunc("DELETE /api/integrations/{provider}", requireAuth(integrationController.Disconnect))
	mux.HandleFunc("GET /api/integrations", requireAuth(integrationController.List))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
