package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/report"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAssessments *mocks.MockAssessmentRepositoryInterface
	mockResponses   *mocks.MockResponseRepositoryInterface
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	mockActionItems *mocks.MockActionItemRepositoryInterface
	reportService   *service.ReportService
	factories       *testutils.FactorySet
	org             *models.Organization
	assessment      *models.Assessment
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssessments = mocks.NewMockAssessmentRepositoryInterface(suite.ctrl)
	suite.mockResponses = mocks.NewMockResponseRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockActionItems = mocks.NewMockActionItemRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	analyticsService := service.NewAnalyticsService(suite.mockAssessments, suite.mockResponses, service.AnalyticsOptions{}, nil, nil)
	suite.reportService = service.NewReportService(suite.mockAssessments, suite.mockOrgs, suite.mockActionItems, analyticsService, nil, nil)

	suite.org = suite.factories.Organization.WithCNPJ("11222333000181")
	q := suite.factories.Questionnaire.Create(nil)
	suite.assessment = suite.factories.Assessment.Active(suite.org.ID, q.ID)
	suite.assessment.Title = "Clima Q1"
	suite.assessment.Questionnaire = q
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) expectData() {
	var rows []models.AnswerRow
	for i := 0; i < 3; i++ {
		responseID := uuid.New()
		for _, q := range suite.assessment.Questionnaire.Questions {
			rows = append(rows, models.AnswerRow{ResponseID: responseID, QuestionID: q.ID, Value: 2 + i, Department: "RH"})
		}
	}
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockResponses.EXPECT().GetAnswerRows(suite.assessment.ID).Return(rows, nil)
	suite.mockActionItems.EXPECT().GetByAssessmentID(suite.assessment.ID).Return([]models.ActionItem{*suite.factories.ActionItem.Create(suite.assessment.ID)}, nil)
}

// TestGenerateXLSX tests the spreadsheet export
func (suite *ReportServiceTestSuite) TestGenerateXLSX() {
	suite.expectData()

	file, err := suite.reportService.Generate(context.Background(), member(suite.org.ID, models.RoleViewer), suite.assessment.ID, service.FormatXLSX)

	suite.NoError(err)
	suite.Equal(report.ContentTypeXLSX, file.ContentType)
	suite.Equal("relatorio-Clima-Q1.xlsx", file.Filename)
	suite.True(bytes.HasPrefix(file.Content, []byte("PK")))
}

// TestGeneratePDF tests the NR-1 PDF export
func (suite *ReportServiceTestSuite) TestGeneratePDF() {
	suite.expectData()

	file, err := suite.reportService.Generate(context.Background(), member(suite.org.ID, models.RoleViewer), suite.assessment.ID, service.FormatPDF)

	suite.NoError(err)
	suite.Equal(report.ContentTypePDF, file.ContentType)
	suite.True(strings.HasSuffix(file.Filename, ".pdf"))
	suite.True(bytes.HasPrefix(file.Content, []byte("%PDF")))
}

// TestGenerateUnknownFormat tests format validation
func (suite *ReportServiceTestSuite) TestGenerateUnknownFormat() {
	_, err := suite.reportService.Generate(context.Background(), member(suite.org.ID, models.RoleViewer), suite.assessment.ID, "docx")
	suite.True(apperrors.IsValidation(err))
}

// TestGenerateOtherTenant tests that other tenants cannot export
func (suite *ReportServiceTestSuite) TestGenerateOtherTenant() {
	suite.mockAssessments.EXPECT().GetWithQuestionnaire(suite.assessment.ID).Return(suite.assessment, nil)

	_, err := suite.reportService.Generate(context.Background(), member(uuid.New(), models.RoleOrgAdmin), suite.assessment.ID, service.FormatPDF)

	suite.ErrorIs(err, apperrors.ErrAssessmentNotFound)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
