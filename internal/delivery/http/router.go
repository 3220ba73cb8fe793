package http

import (
	"net/http"

	"workout-catalog/internal/delivery/http/handler"
	"workout-catalog/internal/delivery/http/middleware"
	"workout-catalog/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	workoutHandler      *handler.WorkoutHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

func NewRouter(
	workoutHandler *handler.WorkoutHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	loggerMiddleware *middleware.LoggerMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		workoutHandler:      workoutHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
		loggerMiddleware:    loggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Workout catalog (public, read-only)
	r.router.HandleFunc("/workouts", r.workoutHandler.List).Methods(http.MethodGet, http.MethodOptions)
	r.router.HandleFunc("/workouts/{id}", r.workoutHandler.GetByID).Methods(http.MethodGet, http.MethodOptions)

	r.router.NotFoundHandler = r.wrap(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "")
	}))
	r.router.MethodNotAllowedHandler = r.wrap(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w)
	}))

	// Request id first so the access log can see it
	r.router.Use(r.requestIDMiddleware.Handle, r.loggerMiddleware.Handle, r.corsMiddleware.Handle)

	return r.router
}

// wrap applies the middleware chain to handlers mux calls without running Use.
func (r *Router) wrap(h http.Handler) http.Handler {
	return r.requestIDMiddleware.Handle(r.loggerMiddleware.Handle(r.corsMiddleware.Handle(h)))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
