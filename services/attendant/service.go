package attendant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	attendantRepo "agendly/database/repository/attendant"
	"agendly/models"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAttendantService implements AttendantService.
type DefaultAttendantService struct {
	Repo  attendantRepo.AttendantRepository
	Cache *redis.Client
}

func (s *DefaultAttendantService) GetByID(id string) (*models.Attendant, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultAttendantService) List() ([]models.Attendant, error) {
	return s.Repo.GetAll()
}

func (s *DefaultAttendantService) Create(attendant *models.Attendant) (*models.Attendant, error) {
	if err := validateWorkingHours(attendant); err != nil {
		return nil, err
	}
	attendant.ID = uuid.New().String()
	now := time.Now()
	attendant.CreatedAt = now
	attendant.UpdatedAt = now
	if err := s.Repo.Create(attendant); err != nil {
		return nil, err
	}
	s.invalidatePoolCache()
	return attendant, nil
}

func (s *DefaultAttendantService) Update(attendant *models.Attendant) (*models.Attendant, error) {
	if err := validateWorkingHours(attendant); err != nil {
		return nil, err
	}
	attendant.UpdatedAt = time.Now()
	if err := s.Repo.Update(attendant); err != nil {
		return nil, err
	}
	s.invalidatePoolCache()
	return attendant, nil
}

func (s *DefaultAttendantService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidatePoolCache()
	return nil
}

// PoolBySectors serves the distribution pool from Redis when fresh, falling
// back to MongoDB on a miss. Cache entries are short-lived and invalidated on
// every attendant write.
func (s *DefaultAttendantService) PoolBySectors(sectors []string) ([]models.Attendant, error) {
	if s.Cache == nil {
		return s.Repo.GetBySectors(sectors)
	}
	key := poolCacheKey(sectors)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if data, err := s.Cache.Get(ctx, key).Bytes(); err == nil {
		var pool []models.Attendant
		if err := json.Unmarshal(data, &pool); err == nil {
			return pool, nil
		}
	}

	pool, err := s.Repo.GetBySectors(sectors)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(pool); err == nil {
		if err := s.Cache.Set(ctx, key, data, utils.AttendantPoolCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("attendant: failed to cache pool", zap.Error(err))
		}
	}
	return pool, nil
}

func poolCacheKey(sectors []string) string {
	sorted := append([]string(nil), sectors...)
	sort.Strings(sorted)
	return utils.AttendantPoolCachePrefix + strings.Join(sorted, ",")
}

func (s *DefaultAttendantService) invalidatePoolCache() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	keys, err := s.Cache.Keys(ctx, utils.AttendantPoolCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("attendant: failed to invalidate pool cache", zap.Error(err))
	}
}

// validateWorkingHours enforces the invariants the engine assumes are
// pre-validated: parseable "HH:MM" values, start before end, and pauses
// contained in the day's shift window.
func validateWorkingHours(attendant *models.Attendant) error {
	for day, window := range attendant.Schedule {
		if window == nil {
			continue
		}
		start, end, err := parseWindow(*window)
		if err != nil {
			return fmt.Errorf("schedule for %s: %w", day, err)
		}
		for i, pause := range attendant.Pauses[day] {
			pStart, pEnd, err := parseWindow(pause)
			if err != nil {
				return fmt.Errorf("pause %d for %s: %w", i+1, day, err)
			}
			if pStart < start || pEnd > end {
				return fmt.Errorf("pause %d for %s falls outside the shift window", i+1, day)
			}
		}
	}
	for day := range attendant.Pauses {
		if attendant.Schedule[day] == nil {
			return fmt.Errorf("pauses set for %s but no shift window", day)
		}
	}
	return nil
}

func parseWindow(w models.TimeWindow) (int, int, error) {
	start, err := clockMinutes(w.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := clockMinutes(w.End)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("window start %q must be before end %q", w.Start, w.End)
	}
	return start, end, nil
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
