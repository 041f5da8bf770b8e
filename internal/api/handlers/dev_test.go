package handlers_test

import (
	"net/http"
	"testing"

	"psicomapa-backend/internal/api/handlers"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"
	"psicomapa-backend/internal/mocks"
	"psicomapa-backend/internal/service"
	"psicomapa-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDevHandlerSeedResponses(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDevSeedServiceInterface(ctrl)
	identity := newIdentity(models.RoleManager)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/api/dev/seed-responses", withIdentity(identity), handlers.NewDevHandler(mockService).SeedResponses)

	t.Run("Created", func(t *testing.T) {
		assessmentID := uuid.New()
		mockService.EXPECT().
			SeedResponses(gomock.Any(), identity, &service.SeedResponsesRequest{AssessmentID: assessmentID, Count: 25, Departments: []string{"RH", "TI"}}).
			Return(&service.SeedResponsesResult{AssessmentID: assessmentID, Created: 25}, nil)

		rec := httpSuite.MakeRequest(http.MethodPost, "/api/dev/seed-responses", map[string]interface{}{
			"assessment_id": assessmentID.String(),
			"count":         25,
			"departments":   []string{"RH", "TI"},
		})

		var resp service.SeedResponsesResult
		testutils.AssertJSONResponse(t, rec, http.StatusCreated, &resp)
		assert.Equal(t, 25, resp.Created)
	})

	t.Run("Count out of range", func(t *testing.T) {
		mockService.EXPECT().SeedResponses(gomock.Any(), identity, gomock.Any()).
			Return(nil, apperrors.NewValidationError("count", "must be between 1 and 500"))

		rec := httpSuite.MakeRequest(http.MethodPost, "/api/dev/seed-responses", map[string]interface{}{
			"assessment_id": uuid.New().String(),
			"count":         501,
		})
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "between 1 and 500")
	})
}
