package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"psicomapa-backend/internal/analytics"
	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AnalyticsService aggregates answers into risk indicators and caches the result per assessment
type AnalyticsService struct {
	assessments  repository.AssessmentRepositoryInterface
	responses    repository.ResponseRepositoryInterface
	cache        *expirable.LRU[uuid.UUID, *analytics.Result]
	minGroupSize int
	metrics      *observability.Metrics
	tracer       trace.Tracer

	// generations counts invalidations per assessment so a compute that
	// raced a submission does not cache its stale result
	mu          sync.Mutex
	generations map[uuid.UUID]uint64
}

// AnalyticsOptions tune the cache and anonymity threshold
type AnalyticsOptions struct {
	MinGroupSize int
	CacheSize    int
	CacheTTL     time.Duration
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(assessments repository.AssessmentRepositoryInterface, responses repository.ResponseRepositoryInterface, opts AnalyticsOptions, metrics *observability.Metrics, tracer trace.Tracer) *AnalyticsService {
	if opts.MinGroupSize < 1 {
		opts.MinGroupSize = analytics.DefaultMinGroupSize
	}
	if opts.CacheSize < 1 {
		opts.CacheSize = 256
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	return &AnalyticsService{
		assessments:  assessments,
		responses:    responses,
		cache:        expirable.NewLRU[uuid.UUID, *analytics.Result](opts.CacheSize, nil, opts.CacheTTL),
		minGroupSize: opts.MinGroupSize,
		metrics:      metrics,
		tracer:       tracerOrNoop(tracer),
		generations:  map[uuid.UUID]uint64{},
	}
}

// AnalyticsResponse wraps the aggregation with assessment metadata
type AnalyticsResponse struct {
	AssessmentID uuid.UUID                `json:"assessment_id"`
	Title        string                   `json:"title"`
	Status       models.AssessmentStatus  `json:"status"`
	Kind         models.QuestionnaireKind `json:"kind"`
	*analytics.Result
}

// Get returns the analytics of an assessment the caller can see
func (s *AnalyticsService) Get(ctx context.Context, identity *auth.Identity, assessmentID uuid.UUID) (*AnalyticsResponse, error) {
	a, err := s.assessments.GetWithQuestionnaire(assessmentID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrAssessmentNotFound
	}

	result, err := s.Compute(ctx, a)
	if err != nil {
		return nil, err
	}
	resp := &AnalyticsResponse{
		AssessmentID: a.ID,
		Title:        a.Title,
		Status:       a.Status,
		Result:       result,
	}
	if a.Questionnaire != nil {
		resp.Kind = a.Questionnaire.Kind
	}
	return resp, nil
}

// Compute returns the cached aggregation of a, computing it on a miss.
// a must have its questionnaire and questions loaded.
func (s *AnalyticsService) Compute(ctx context.Context, a *models.Assessment) (*analytics.Result, error) {
	if result, ok := s.cache.Get(a.ID); ok {
		s.metrics.RecordAnalyticsCache("hit")
		return result, nil
	}
	s.metrics.RecordAnalyticsCache("miss")

	_, span := s.tracer.Start(ctx, "analytics.compute", trace.WithAttributes(
		attribute.String("assessment.id", a.ID.String()),
	))
	defer span.End()

	if a.Questionnaire == nil {
		err := fmt.Errorf("assessment %s has no questionnaire loaded", a.ID)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	generation := s.generation(a.ID)
	start := time.Now()
	rows, err := s.responses.GetAnswerRows(a.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load answers")
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	result := analytics.Compute(analytics.Input{
		ScaleMin:     a.Questionnaire.ScaleMin,
		ScaleMax:     a.Questionnaire.ScaleMax,
		Questions:    a.Questionnaire.Questions,
		Rows:         rows,
		MinGroupSize: s.minGroupSize,
	})
	s.metrics.ObserveAnalyticsDuration(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.Int("analytics.rows", len(rows)),
		attribute.Int("analytics.respondents", result.Summary.Respondents),
		attribute.String("analytics.level", string(result.Summary.Level)),
	)

	s.mu.Lock()
	if s.generations[a.ID] == generation {
		s.cache.Add(a.ID, result)
	}
	s.mu.Unlock()
	return result, nil
}

func (s *AnalyticsService) generation(assessmentID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[assessmentID]
}

// Invalidate drops the cached aggregation of an assessment. A compute
// already in flight for it will not cache its result.
func (s *AnalyticsService) Invalidate(assessmentID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[assessmentID]++
	s.cache.Remove(assessmentID)
}
