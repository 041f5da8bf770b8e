package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"psicomapa-backend/internal/auth"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/report"
	"psicomapa-backend/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Report formats
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportFile is a rendered report ready to stream
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService renders assessment analytics as downloadable files
type ReportService struct {
	assessments repository.AssessmentRepositoryInterface
	orgs        repository.OrganizationRepositoryInterface
	actionItems repository.ActionItemRepositoryInterface
	analytics   *AnalyticsService
	metrics     *observability.Metrics
	tracer      trace.Tracer
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(assessments repository.AssessmentRepositoryInterface, orgs repository.OrganizationRepositoryInterface, actionItems repository.ActionItemRepositoryInterface, analytics *AnalyticsService, metrics *observability.Metrics, tracer trace.Tracer) *ReportService {
	return &ReportService{
		assessments: assessments,
		orgs:        orgs,
		actionItems: actionItems,
		analytics:   analytics,
		metrics:     metrics,
		tracer:      tracerOrNoop(tracer),
		now:         time.Now,
	}
}

// Generate renders the report of an assessment in format
func (s *ReportService) Generate(ctx context.Context, identity *auth.Identity, assessmentID uuid.UUID, format string) (*ReportFile, error) {
	if format != FormatXLSX && format != FormatPDF {
		return nil, apperrors.NewValidationError("format", "must be xlsx or pdf")
	}

	ctx, span := s.tracer.Start(ctx, "report.generate", trace.WithAttributes(
		attribute.String("assessment.id", assessmentID.String()),
		attribute.String("report.format", format),
	))
	defer span.End()

	file, err := s.generate(ctx, identity, assessmentID, format)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("report.bytes", len(file.Content)))
	s.metrics.RecordReport(format)
	return file, nil
}

func (s *ReportService) generate(ctx context.Context, identity *auth.Identity, assessmentID uuid.UUID, format string) (*ReportFile, error) {
	a, err := s.assessments.GetWithQuestionnaire(assessmentID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssessmentNotFound, "get assessment")
	}
	if authorizeOrganization(identity, a.OrganizationID) != nil {
		return nil, apperrors.ErrAssessmentNotFound
	}

	org, err := s.orgs.GetByID(a.OrganizationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	result, err := s.analytics.Compute(ctx, a)
	if err != nil {
		return nil, err
	}
	items, err := s.actionItems.GetByAssessmentID(a.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get action items: %w", err)
	}

	data := &report.Data{
		OrganizationName: org.Name,
		AssessmentTitle:  a.Title,
		StartsAt:         a.StartsAt,
		EndsAt:           a.EndsAt,
		ClosedAt:         a.ClosedAt,
		GeneratedAt:      s.now(),
		Result:           result,
		ActionItems:      items,
	}
	if org.CNPJ != nil {
		data.OrganizationCNPJ = *org.CNPJ
	}
	if a.Questionnaire != nil {
		data.QuestionnaireKind = a.Questionnaire.Kind
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case FormatXLSX:
		content, err = report.RenderXLSX(data)
		contentType = report.ContentTypeXLSX
	default:
		content, err = report.RenderPDF(data)
		contentType = report.ContentTypePDF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	return &ReportFile{
		Filename:    report.Filename(a.Title, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}
