package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"aris-service/internal/analysis"
	"aris-service/internal/event"
	"aris-service/internal/models"
	"aris-service/internal/repository"
	"aris-service/internal/roster"
)

const snapshotKeyPrefix = "aris:analysis:"

// AnalysisService runs the readiness classification over the roster and
// manages snapshot persistence and caching.
type AnalysisService struct {
	analyzer    *analysis.Analyzer
	roster      roster.Source
	requests    *repository.RequestRepository
	cache       *redis.Client
	snapshotTTL time.Duration
	publisher   event.Publisher
}

func NewAnalysisService(
	analyzer *analysis.Analyzer,
	rosterSource roster.Source,
	requests *repository.RequestRepository,
	cache *redis.Client,
	snapshotTTL time.Duration,
	publisher event.Publisher,
) *AnalysisService {
	return &AnalysisService{
		analyzer:    analyzer,
		roster:      rosterSource,
		requests:    requests,
		cache:       cache,
		snapshotTTL: snapshotTTL,
		publisher:   publisher,
	}
}

// Analyze classifies the full roster against the request's skill
// requirements. A roster fetch failure is propagated, never silently turned
// into an empty result.
func (s *AnalysisService) Analyze(ctx context.Context, body *models.AnalyzeRequestBody) (*models.AnalysisResult, error) {
	if len(body.Skills) == 0 {
		return nil, fmt.Errorf("at least one skill requirement is required")
	}
	teamSize := body.TeamSize
	if teamSize <= 0 {
		teamSize = 1
	}

	// Flip persisted requests to analyzing while the run is in flight.
	tracked := false
	if body.RequestID != "" {
		if err := s.requests.UpdateStatus(ctx, body.RequestID, models.StatusAnalyzing); err != nil {
			log.Printf("Warning: could not mark %s analyzing: %v", body.RequestID, err)
		} else {
			tracked = true
		}
	}

	employees, err := s.roster.FetchAll(ctx)
	if err != nil {
		if tracked {
			// Do not leave the request stuck in analyzing.
			if revertErr := s.requests.UpdateStatus(ctx, body.RequestID, models.StatusPending); revertErr != nil {
				log.Printf("Warning: could not revert %s to pending: %v", body.RequestID, revertErr)
			}
		}
		return nil, fmt.Errorf("analysis aborted: %w", err)
	}

	result := s.analyzer.Analyze(body.RequestID, body.Skills, teamSize, employees)

	if tracked {
		if err := s.requests.SaveSnapshot(ctx, body.RequestID, &result); err != nil {
			log.Printf("Warning: failed to persist snapshot for %s: %v", body.RequestID, err)
		}
		if err := s.requests.UpdateStatus(ctx, body.RequestID, models.StatusProposed); err != nil {
			log.Printf("Warning: could not mark %s proposed: %v", body.RequestID, err)
		}
	}

	s.cacheSnapshot(ctx, &result)

	if err := s.publisher.PublishRequestEvent(ctx, models.EventTypeAnalysisCompleted, &models.RequestEvent{
		RequestID:          body.RequestID,
		Placed:             result.Placed(),
		ExternalHireNeeded: result.ExternalHireNeeded,
		ConfidenceScore:    result.ConfidenceScore,
	}); err != nil {
		log.Printf("Warning: failed to publish analysis.completed event: %v", err)
	}

	return &result, nil
}

// GetSnapshot returns the latest analysis for a request, preferring the
// Redis cache and falling back to the persisted snapshot in Mongo.
func (s *AnalysisService) GetSnapshot(ctx context.Context, requestID string) (*models.AnalysisResult, error) {
	if cached := s.cachedSnapshot(ctx, requestID); cached != nil {
		return cached, nil
	}

	req, err := s.requests.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	if req.AnalysisSnapshot == nil {
		return nil, fmt.Errorf("no analysis snapshot for request %s", requestID)
	}

	s.cacheSnapshot(ctx, req.AnalysisSnapshot)
	return req.AnalysisSnapshot, nil
}

// InvalidateSnapshots drops all cached analysis results. Called when
// employee data changes upstream so stale classifications are not served.
func (s *AnalysisService) InvalidateSnapshots(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := s.cache.Scan(ctx, cursor, snapshotKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan snapshot keys: %w", err)
		}
		if len(keys) > 0 {
			if err := s.cache.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete snapshot keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *AnalysisService) cacheSnapshot(ctx context.Context, result *models.AnalysisResult) {
	if s.cache == nil || result.RequestID == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to marshal snapshot for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, snapshotKeyPrefix+result.RequestID, payload, s.snapshotTTL).Err(); err != nil {
		log.Printf("Warning: failed to cache snapshot for %s: %v", result.RequestID, err)
	}
}

func (s *AnalysisService) cachedSnapshot(ctx context.Context, requestID string) *models.AnalysisResult {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, snapshotKeyPrefix+requestID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Warning: snapshot cache read failed for %s: %v", requestID, err)
		}
		return nil
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		log.Printf("Warning: corrupt cached snapshot for %s: %v", requestID, err)
		return nil
	}
	return &result
}
