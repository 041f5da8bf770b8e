package analytics

import (
	"math"
	"testing"

	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(position int, dimension string, polarity models.Polarity) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Position:  position,
		Text:      "q",
		Dimension: dimension,
		Polarity:  polarity,
	}
}

// respond answers every question with the given values for one respondent
func respond(questions []models.Question, department string, values ...int) []models.AnswerRow {
	id := uuid.New()
	rows := make([]models.AnswerRow, 0, len(values))
	for i, v := range values {
		rows = append(rows, models.AnswerRow{ResponseID: id, QuestionID: questions[i].ID, Value: v, Department: department})
	}
	return rows
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 4, Normalize(4, models.PolarityNegative, 1, 5))
	assert.Equal(t, 2, Normalize(4, models.PolarityPositive, 1, 5))
	assert.Equal(t, 0, Normalize(10, models.PolarityPositive, 0, 10))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want Level
	}{
		{"bottom of scale", 1, LevelLow},
		{"just below first third", 2.3, LevelLow},
		{"just above first third", 2.4, LevelMedium},
		{"middle", 3, LevelMedium},
		{"just below second third", 3.6, LevelMedium},
		{"just above second third", 3.7, LevelHigh},
		{"top of scale", 5, LevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.mean, 1, 5))
		})
	}

	assert.Equal(t, LevelLow, Classify(3, 3, 3), "degenerate scale")
}

func TestComputeEmptyInput(t *testing.T) {
	qs := []models.Question{question(1, "Demandas", models.PolarityNegative)}

	res := Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs})

	assert.Equal(t, 0, res.Summary.Respondents)
	assert.Equal(t, LevelLow, res.Summary.Level)
	assert.Equal(t, 0.0, res.Summary.OverallRiskMean)
	require.Len(t, res.Questions, 1)
	q := res.Questions[0]
	assert.Equal(t, LevelLow, q.Level)
	assert.False(t, math.IsNaN(q.Mean))
	assert.False(t, math.IsNaN(q.FavorablePct))
	require.Len(t, q.Distribution, 5)
	for _, p := range q.Distribution {
		assert.Equal(t, 0.0, p.Percent)
	}
	require.Len(t, res.Dimensions, 1)
	assert.Equal(t, LevelLow, res.Dimensions[0].Level)
	assert.Equal(t, 1, res.Summary.LevelCounts[LevelLow])
	assert.Empty(t, res.Departments)
}

func TestComputeInvertedScale(t *testing.T) {
	qs := []models.Question{question(1, "Demandas", models.PolarityNegative)}
	rows := respond(qs, "RH", 3)

	var res *Result
	require.NotPanics(t, func() {
		res = Compute(Input{ScaleMin: 5, ScaleMax: 1, Questions: qs, Rows: rows})
	})

	assert.Equal(t, 0, res.Summary.Respondents)
	assert.Equal(t, LevelLow, res.Summary.Level)
	assert.Empty(t, res.Questions)
	assert.Empty(t, res.Dimensions)
	assert.Empty(t, res.Departments)
	assert.Equal(t, DefaultMinGroupSize, res.MinGroupSize)
}

func TestComputeQuestionAndDimension(t *testing.T) {
	qs := []models.Question{
		question(1, "Demandas", models.PolarityNegative),
		question(2, "Demandas", models.PolarityPositive),
		question(3, "Apoio", models.PolarityPositive),
	}
	var rows []models.AnswerRow
	rows = append(rows, respond(qs, "", 5, 1, 5)...)
	rows = append(rows, respond(qs, "", 4, 2, 4)...)
	rows = append(rows, respond(qs, "", 3, 3, 5)...)
	rows = append(rows, respond(qs, "", 4, 2, 4)...)

	res := Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs, Rows: rows})

	assert.Equal(t, 4, res.Summary.Respondents)
	assert.Equal(t, 12, res.Summary.Answers)

	q1 := res.Questions[0]
	assert.Equal(t, 4, q1.Count)
	assert.InDelta(t, 4.0, q1.Mean, 1e-9)
	assert.InDelta(t, 4.0, q1.RiskMean, 1e-9)
	assert.Equal(t, LevelHigh, q1.Level)
	assert.InDelta(t, 75.0, q1.UnfavorablePct, 1e-9)
	assert.InDelta(t, 25.0, q1.NeutralPct, 1e-9)
	assert.InDelta(t, 0.0, q1.FavorablePct, 1e-9)
	assert.Equal(t, 2, q1.Distribution[3].Count)
	assert.InDelta(t, 50.0, q1.Distribution[3].Percent, 1e-9)

	// positive polarity: raw mean 2 mirrors to risk mean 4
	q2 := res.Questions[1]
	assert.InDelta(t, 2.0, q2.Mean, 1e-9)
	assert.InDelta(t, 4.0, q2.RiskMean, 1e-9)
	assert.Equal(t, LevelHigh, q2.Level)

	// supportive answers are favorable
	q3 := res.Questions[2]
	assert.InDelta(t, 4.5, q3.Mean, 1e-9)
	assert.InDelta(t, 1.5, q3.RiskMean, 1e-9)
	assert.Equal(t, LevelLow, q3.Level)
	assert.InDelta(t, 100.0, q3.FavorablePct, 1e-9)

	require.Len(t, res.Dimensions, 2)
	assert.Equal(t, "Demandas", res.Dimensions[0].Dimension)
	assert.Equal(t, 2, res.Dimensions[0].QuestionCount)
	assert.Equal(t, 8, res.Dimensions[0].Count)
	assert.InDelta(t, 4.0, res.Dimensions[0].RiskMean, 1e-9)
	assert.Equal(t, LevelHigh, res.Dimensions[0].Level)
	assert.Equal(t, "Apoio", res.Dimensions[1].Dimension)
	assert.Equal(t, LevelLow, res.Dimensions[1].Level)

	assert.Equal(t, 1, res.Summary.LevelCounts[LevelHigh])
	assert.Equal(t, 1, res.Summary.LevelCounts[LevelLow])
	assert.InDelta(t, (16.0+16.0+6.0)/12.0, res.Summary.OverallRiskMean, 1e-9)
}

func TestComputeIgnoresUnknownAndOutOfScaleRows(t *testing.T) {
	qs := []models.Question{question(1, "Demandas", models.PolarityNegative)}
	rows := []models.AnswerRow{
		{ResponseID: uuid.New(), QuestionID: qs[0].ID, Value: 2},
		{ResponseID: uuid.New(), QuestionID: qs[0].ID, Value: 9},
		{ResponseID: uuid.New(), QuestionID: uuid.New(), Value: 3},
	}

	res := Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs, Rows: rows})

	assert.Equal(t, 1, res.Summary.Respondents)
	assert.Equal(t, 1, res.Questions[0].Count)
}

func TestComputeSortsQuestionsByPosition(t *testing.T) {
	qs := []models.Question{
		question(2, "B", models.PolarityNegative),
		question(1, "A", models.PolarityNegative),
	}

	res := Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs})

	assert.Equal(t, 1, res.Questions[0].Position)
	assert.Equal(t, "A", res.Dimensions[0].Dimension)
}

func TestComputeDepartmentsSuppressSmallGroups(t *testing.T) {
	qs := []models.Question{question(1, "Demandas", models.PolarityNegative)}
	var rows []models.AnswerRow
	for i := 0; i < 3; i++ {
		rows = append(rows, respond(qs, "Produção", 5)...)
	}
	for i := 0; i < 2; i++ {
		rows = append(rows, respond(qs, "RH", 1)...)
	}
	rows = append(rows, respond(qs, "", 3)...)

	res := Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs, Rows: rows})

	assert.Equal(t, 6, res.Summary.Respondents)
	assert.Equal(t, DefaultMinGroupSize, res.MinGroupSize)
	require.Len(t, res.Departments, 1)
	assert.Equal(t, 1, res.SuppressedDepartments)
	prod := res.Departments[0]
	assert.Equal(t, "Produção", prod.Department)
	assert.Equal(t, 3, prod.Respondents)
	assert.Equal(t, LevelHigh, prod.Level)
	mean, ok := prod.RiskMeanOf("Demandas")
	assert.True(t, ok)
	assert.InDelta(t, 5.0, mean, 1e-9)

	res = Compute(Input{ScaleMin: 1, ScaleMax: 5, Questions: qs, Rows: rows, MinGroupSize: 2})
	require.Len(t, res.Departments, 2)
	assert.Equal(t, "RH", res.Departments[1].Department)
	assert.Equal(t, LevelLow, res.Departments[1].Level)
	assert.Zero(t, res.SuppressedDepartments)
}
