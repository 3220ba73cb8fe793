package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"

	"workout-catalog/internal/converter"
	"workout-catalog/internal/delivery/dto"
	"workout-catalog/internal/domain/entity"
	"workout-catalog/internal/domain/repository"
	"workout-catalog/internal/query"
	"workout-catalog/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrInvalidStartMonth = errors.New("start month must be YYYY-MM")
	ErrInvalidCategory   = errors.New("unknown category code")
)

const defaultPageSize = 10

type WorkoutUsecase interface {
	List(ctx context.Context, req *dto.ListWorkoutsQuery) (*dto.WorkoutListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkoutResponse, error)
}

type workoutUsecase struct {
	log          *logrus.Logger
	workoutRepo  repository.WorkoutRepository
	cacheService service.WorkoutCacheService
	pageSize     int

	// concurrent misses of the same page share one repository query
	listGroup singleflight.Group
}

func NewWorkoutUsecase(
	log *logrus.Logger,
	workoutRepo repository.WorkoutRepository,
	cacheService service.WorkoutCacheService,
	pageSize int,
) WorkoutUsecase {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &workoutUsecase{
		log:          log,
		workoutRepo:  workoutRepo,
		cacheService: cacheService,
		pageSize:     pageSize,
	}
}

// List returns one page of workouts ordered by start date then name.
// A page past the end is empty but still reports the real total.
func (u *workoutUsecase) List(ctx context.Context, req *dto.ListWorkoutsQuery) (*dto.WorkoutListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	filter := &entity.WorkoutFilter{}
	for _, code := range req.Categories {
		if !entity.IsValidCategory(code) {
			return nil, ErrInvalidCategory
		}
		filter.Categories = append(filter.Categories, entity.Category(code))
	}
	if req.StartDate != "" {
		from, until, err := query.MonthBounds(req.StartDate)
		if err != nil {
			return nil, ErrInvalidStartMonth
		}
		filter.StartFrom, filter.StartUntil = from, until
	}

	key := u.listCacheKey(page, req)
	var cached dto.WorkoutListResponse
	if u.cacheService.Get(ctx, key, &cached) {
		u.log.Debugf("Serving workouts page from cache: %s", key)
		return &cached, nil
	}

	// the shared query outlives any single caller's cancellation
	shared := context.WithoutCancel(ctx)
	ch := u.listGroup.DoChan(key, func() (any, error) {
		workouts, total, err := u.workoutRepo.FindAll(shared, filter, u.pageSize, u.offset(page))
		if err != nil {
			return nil, err
		}
		resp := &dto.WorkoutListResponse{
			Workouts: converter.WorkoutsToResponses(workouts),
			Total:    total,
			PageSize: u.pageSize,
		}
		u.cacheService.Set(shared, key, resp)
		return resp, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			u.log.Warnf("Failed to find workouts: %+v", res.Err)
			return nil, res.Err
		}
		return res.Val.(*dto.WorkoutListResponse), nil
	}
}

// offset of page; pages too large to address land past the end.
func (u *workoutUsecase) offset(page int) int {
	if page-1 > math.MaxInt/u.pageSize {
		return math.MaxInt
	}
	return (page - 1) * u.pageSize
}

func (u *workoutUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkoutResponse, error) {
	key := service.RedisWorkoutItemKeyPrefix + id.String()
	var cached dto.WorkoutResponse
	if u.cacheService.Get(ctx, key, &cached) {
		return &cached, nil
	}

	workout, err := u.workoutRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find workout %s: %+v", id, err)
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}

	resp := converter.WorkoutToResponse(workout)
	u.cacheService.Set(ctx, key, resp)

	return resp, nil
}

// listCacheKey includes the page size; category order does not change it.
func (u *workoutUsecase) listCacheKey(page int, req *dto.ListWorkoutsQuery) string {
	q := query.Query{Page: page, Categories: req.Categories, StartMonth: req.StartDate}
	return service.RedisWorkoutListKeyPrefix + strconv.Itoa(u.pageSize) + ":" + q.Key()
}
