package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"teamhours-be/internal/cache"
	"teamhours-be/internal/entities"
	"teamhours-be/internal/models"
	"teamhours-be/internal/repository"
	"teamhours-be/internal/timecalc"
)

// listCacheTTL bounds staleness of the cached monthly listing; writes also
// invalidate eagerly.
const listCacheTTL = 5 * time.Minute

// WorkHoursService defines the interface for work-hours business logic
type WorkHoursService interface {
	Add(ctx context.Context, userID string, req *models.AddWorkHoursRequest) (*entities.WorkHour, error)
	ListMonth(ctx context.Context, userID string, month *string) ([]*models.WorkHourResponse, error)
	EditSummary(ctx context.Context, id int64, summary *string) (*models.WorkHourResponse, error)
}

type workHoursService struct {
	repo  repository.WorkHoursRepository
	cache cache.Cache
}

// NewWorkHoursService creates a new work-hours service. cacheClient may be
// nil; the service then always reads through to the database.
func NewWorkHoursService(repo repository.WorkHoursRepository, cacheClient cache.Cache) WorkHoursService {
	return &workHoursService{
		repo:  repo,
		cache: cacheClient,
	}
}

func listCacheKey(userID string, year int, month time.Month) string {
	return fmt.Sprintf("workhours:%s:%04d-%02d", userID, year, month)
}

// Add validates and persists a new work-hour entry. The total duration is
// computed here, once, and stored as a formatted token; nothing ever
// recomputes it.
func (s *workHoursService) Add(ctx context.Context, userID string, req *models.AddWorkHoursRequest) (*entities.WorkHour, error) {
	start, err := timecalc.ParseDateTime(req.StartDateTime, req.Timezone)
	if err != nil {
		return nil, invalidInput("Start Date Time must be a valid date time.")
	}
	end, err := timecalc.ParseDateTime(req.EndDateTime, req.Timezone)
	if err != nil {
		return nil, invalidInput("End Date Time must be a valid date time.")
	}
	if end.Before(start) {
		return nil, invalidInput("End Date Time must not be before Start Date Time.")
	}

	totalHours := timecalc.FormatMinutes(timecalc.ElapsedMinutes(start, end))

	wh, err := s.repo.Create(userID, start, end, req.Summary, req.Timezone, totalHours)
	if err != nil {
		return nil, err
	}

	s.invalidateMonth(ctx, wh)
	return wh, nil
}

// ListMonth returns the caller's entries for the given "YYYY-MM" month, or
// the current server month when omitted. Results are newest-id first with
// start/end formatted for display.
func (s *workHoursService) ListMonth(ctx context.Context, userID string, month *string) ([]*models.WorkHourResponse, error) {
	filter := time.Now().UTC()
	if month != nil && *month != "" {
		var err error
		filter, err = timecalc.ParseMonth(*month)
		if err != nil {
			return nil, invalidInput("Month must be in YYYY-MM format.")
		}
	}

	key := listCacheKey(userID, filter.Year(), filter.Month())
	if s.cache != nil {
		var cached []*models.WorkHourResponse
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.ListByMonth(userID, filter.Year(), filter.Month())
	if err != nil {
		return nil, err
	}

	responses := make([]*models.WorkHourResponse, 0, len(entries))
	for _, wh := range entries {
		responses = append(responses, toWorkHourResponse(wh))
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, responses, listCacheTTL); err != nil {
			log.Printf("Warning: failed to cache work hours listing: %v", err)
		}
	}

	return responses, nil
}

// EditSummary overwrites (or clears) the summary of an entry. Start, end
// and the stored duration are untouched.
func (s *workHoursService) EditSummary(ctx context.Context, id int64, summary *string) (*models.WorkHourResponse, error) {
	wh, err := s.repo.UpdateSummary(id, summary)
	if err != nil {
		return nil, err
	}

	s.invalidateMonth(ctx, wh)
	return toWorkHourResponse(wh), nil
}

func (s *workHoursService) invalidateMonth(ctx context.Context, wh *entities.WorkHour) {
	if s.cache == nil {
		return
	}
	// Month buckets match the repository's UTC-based filter.
	start := wh.StartTime.UTC()
	if err := s.cache.Delete(ctx, listCacheKey(wh.UserID, start.Year(), start.Month())); err != nil {
		log.Printf("Warning: failed to invalidate work hours cache: %v", err)
	}
}

func toWorkHourResponse(wh *entities.WorkHour) *models.WorkHourResponse {
	return &models.WorkHourResponse{
		ID:            wh.ID,
		StartDateTime: wh.DisplayStart().Format(timecalc.DateTimeLayout),
		EndDateTime:   wh.DisplayEnd().Format(timecalc.DateTimeLayout),
		TotalHours:    wh.TotalHours,
		Summary:       wh.Summary,
	}
}
