package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"workout-catalog/internal/domain/entity"
	"workout-catalog/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const seedMonths = 6

var (
	seedAdjectives = []string{"Morning", "Power", "Gentle", "Intense", "Core", "Full Body", "Express", "Evening"}
	seedActivities = []string{"Yoga", "HIIT", "Pilates", "Stretch", "Cardio", "Strength", "Mobility", "Boxing"}
	seedSentences  = []string{
		"Warm up with dynamic movements before moving into the main circuit.",
		"Focus on controlled breathing and steady form throughout every set.",
		"Short intervals push your heart rate up and keep the session efficient.",
		"Suitable for all levels with options to scale each exercise.",
		"Finish with a cooldown that targets hips, shoulders and the lower back.",
	}
)

// SeedService fills the catalog with generated workouts spread over the coming months.
type SeedService struct {
	log          *logrus.Logger
	workoutRepo  repository.WorkoutRepository
	cacheService WorkoutCacheService
	now          func() time.Time
	rng          *rand.Rand
}

func NewSeedService(log *logrus.Logger, workoutRepo repository.WorkoutRepository, cacheService WorkoutCacheService) *SeedService {
	return &SeedService{
		log:          log,
		workoutRepo:  workoutRepo,
		cacheService: cacheService,
		now:          time.Now,
		rng:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

// Seed inserts count workouts and drops cached pages. It returns the catalog size afterwards.
func (s *SeedService) Seed(ctx context.Context, count int) (int64, error) {
	if count < 1 {
		return 0, fmt.Errorf("seed count must be positive, got %d", count)
	}

	workouts := s.generate(count)
	if err := s.workoutRepo.CreateBatch(ctx, workouts); err != nil {
		s.log.Warnf("Failed to insert seed workouts: %+v", err)
		return 0, fmt.Errorf("insert workouts: %w", err)
	}

	if _, err := s.cacheService.InvalidateAll(ctx); err != nil {
		s.log.Warnf("Failed to invalidate workout cache: %+v", err)
	}

	total, err := s.workoutRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	s.log.Infof("Seeded %d workouts, catalog now holds %d", count, total)
	return total, nil
}

func (s *SeedService) generate(count int) []entity.Workout {
	now := s.now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := int(first.AddDate(0, seedMonths, 0).Sub(first).Hours() / 24)

	workouts := make([]entity.Workout, count)
	for i := range workouts {
		workouts[i] = entity.Workout{
			Name:        seedAdjectives[s.rng.IntN(len(seedAdjectives))] + " " + seedActivities[s.rng.IntN(len(seedActivities))],
			Description: s.description(),
			Category:    entity.AllCategories[s.rng.IntN(len(entity.AllCategories))],
			StartDate:   first.AddDate(0, 0, s.rng.IntN(days)),
		}
	}
	return workouts
}

func (s *SeedService) description() string {
	a := seedSentences[s.rng.IntN(len(seedSentences))]
	b := seedSentences[s.rng.IntN(len(seedSentences))]
	if a == b {
		return a
	}
	return a + " " + b
}
