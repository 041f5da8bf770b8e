package report

import (
	"bytes"
	"testing"
	"time"

	"psicomapa-backend/internal/analytics"
	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData(t *testing.T) *Data {
	t.Helper()
	qs := []models.Question{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Position: 1, Text: "Você tem que trabalhar muito rapidamente?", Dimension: "Ritmo de trabalho", Polarity: models.PolarityNegative},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Position: 2, Text: "Recebe ajuda dos colegas?", Dimension: "Apoio social", Polarity: models.PolarityPositive},
	}
	var rows []models.AnswerRow
	for i := 0; i < 4; i++ {
		rid := uuid.New()
		rows = append(rows,
			models.AnswerRow{ResponseID: rid, QuestionID: qs[0].ID, Value: 5, Department: "Produção"},
			models.AnswerRow{ResponseID: rid, QuestionID: qs[1].ID, Value: 4, Department: "Produção"},
		)
	}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return &Data{
		OrganizationName: "Acme Indústria",
		OrganizationCNPJ: "11222333000181",
		AssessmentTitle:  "Avaliação março",
		StartsAt:         &start,
		EndsAt:           &end,
		GeneratedAt:      time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
		Result:           analytics.Compute(analytics.Input{ScaleMin: 1, ScaleMax: 5, Questions: qs, Rows: rows}),
		ActionItems: []models.ActionItem{
			{Dimension: "Ritmo de trabalho", Description: "Redistribuir metas", Owner: "Gerência", DueDate: &due, Status: models.ActionStatusInProgress},
		},
	}
}

func TestRenderXLSX(t *testing.T) {
	out, err := RenderXLSX(sampleData(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumo", "Dimensões", "Questões", "Departamentos"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumo", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Indústria", v)

	v, err = f.GetCellValue("Resumo", "B5")
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	v, err = f.GetCellValue("Dimensões", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ritmo de trabalho", v)
	v, err = f.GetCellValue("Dimensões", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Alto", v)

	v, err = f.GetCellValue("Departamentos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Produção", v)
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleData(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderRejectsEmptyData(t *testing.T) {
	_, err := RenderXLSX(nil)
	assert.Error(t, err)
	_, err = RenderPDF(&Data{})
	assert.Error(t, err)
}

func TestPeriodAndFilename(t *testing.T) {
	d := sampleData(t)
	assert.Equal(t, "01/03/2026 a 31/03/2026", d.Period())
	d.EndsAt = nil
	assert.Equal(t, "desde 01/03/2026", d.Period())
	assert.Equal(t, "-", (&Data{}).Period())

	assert.Equal(t, "relatorio-Avaliacao-marco.xlsx", Filename("Avaliação março", "xlsx"))
	assert.Equal(t, "relatorio-cao.pdf", Filename("ção", "pdf"))
	assert.Equal(t, "relatorio-AVALIACAO.pdf", Filename("AVALIAÇÃO", "pdf"))
	assert.Equal(t, "relatorio.pdf", Filename("???", "pdf"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Alto", LevelLabel(analytics.LevelHigh))
	assert.Equal(t, "Médio", LevelLabel(analytics.LevelMedium))
	assert.Equal(t, "Baixo", LevelLabel(analytics.LevelLow))
	assert.Equal(t, "Concluída", ActionStatusLabel(models.ActionStatusDone))
	assert.Contains(t, Recommendation(analytics.LevelHigh), "PGR")
}
