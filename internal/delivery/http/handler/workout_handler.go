package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"workout-catalog/internal/delivery/dto"
	"workout-catalog/internal/query"
	"workout-catalog/internal/usecase"
	"workout-catalog/pkg/response"
	"workout-catalog/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkoutHandler struct {
	workoutUsecase usecase.WorkoutUsecase
	validator      *validator.CustomValidator
}

func NewWorkoutHandler(workoutUsecase usecase.WorkoutUsecase, validator *validator.CustomValidator) *WorkoutHandler {
	return &WorkoutHandler{
		workoutUsecase: workoutUsecase,
		validator:      validator,
	}
}

// List handles getting one page of workouts
// @Summary List workouts
// @Tags Workouts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param category query string false "Comma-joined category codes"
// @Param startDate query string false "Start month, YYYY-MM"
// @Success 200 {object} dto.WorkoutListResponse
// @Failure 400 {object} response.Response
// @Router /workouts [get]
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	page := 1
	if raw := strings.TrimSpace(values.Get(query.ParamPage)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid page", map[string]string{query.ParamPage: "page must be an integer"})
			return
		}
		page = n
	}

	// categories and month share the parsing rules of the shareable URL
	parsed := query.Parse(values)
	req := dto.ListWorkoutsQuery{
		Page:       page,
		Categories: parsed.Categories,
		StartDate:  parsed.StartMonth,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workouts, err := h.workoutUsecase.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidStartMonth):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get workouts")
		}
		return
	}

	response.JSON(w, http.StatusOK, workouts)
}

// GetByID handles getting a workout by ID
// @Summary Get workout by ID
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} dto.WorkoutResponse
// @Failure 404 {object} response.Response
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid workout ID", nil)
		return
	}

	workout, err := h.workoutUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWorkoutNotFound):
			response.NotFound(w, "Workout not found")
		default:
			response.InternalServerError(w, "Failed to get workout")
		}
		return
	}

	response.JSON(w, http.StatusOK, workout)
}
