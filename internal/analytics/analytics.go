// Package analytics aggregates survey answers into per question, per
// dimension and per department risk indicators.
package analytics

import (
	"sort"

	"psicomapa-backend/internal/database/models"

	"github.com/google/uuid"
)

// Level is a three-tier risk label
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Levels in ascending order of risk
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// DefaultMinGroupSize is the smallest department shown in breakdowns
const DefaultMinGroupSize = 3

// Input is everything Compute needs. Rows for unknown questions or with
// values outside the scale are ignored.
type Input struct {
	ScaleMin     int
	ScaleMax     int
	Questions    []models.Question
	Rows         []models.AnswerRow
	MinGroupSize int
}

// DistributionPoint is the share of answers on one scale point
type DistributionPoint struct {
	Value   int     `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// QuestionResult aggregates one question
type QuestionResult struct {
	QuestionID     uuid.UUID           `json:"question_id"`
	Position       int                 `json:"position"`
	Text           string              `json:"text"`
	Dimension      string              `json:"dimension"`
	Polarity       models.Polarity     `json:"polarity"`
	Count          int                 `json:"count"`
	Mean           float64             `json:"mean"`
	RiskMean       float64             `json:"risk_mean"`
	Distribution   []DistributionPoint `json:"distribution"`
	FavorablePct   float64             `json:"favorable_pct"`
	NeutralPct     float64             `json:"neutral_pct"`
	UnfavorablePct float64             `json:"unfavorable_pct"`
	Level          Level               `json:"level"`
}

// DimensionResult aggregates all answers of a dimension
type DimensionResult struct {
	Dimension     string  `json:"dimension"`
	QuestionCount int     `json:"question_count"`
	Count         int     `json:"count"`
	RiskMean      float64 `json:"risk_mean"`
	FavorablePct  float64 `json:"favorable_pct"`
	Level         Level   `json:"level"`
}

// DepartmentResult holds the dimension risk means of one department
type DepartmentResult struct {
	Department  string            `json:"department"`
	Respondents int               `json:"respondents"`
	RiskMean    float64           `json:"risk_mean"`
	Level       Level             `json:"level"`
	Dimensions  []DimensionResult `json:"dimensions"`
}

// RiskMeanOf returns the department's risk mean for dimension
func (d DepartmentResult) RiskMeanOf(dimension string) (float64, bool) {
	for _, dim := range d.Dimensions {
		if dim.Dimension == dimension {
			return dim.RiskMean, true
		}
	}
	return 0, false
}

// Summary is the assessment-wide headline
type Summary struct {
	Respondents     int           `json:"respondents"`
	Answers         int           `json:"answers"`
	OverallRiskMean float64       `json:"overall_risk_mean"`
	Level           Level         `json:"level"`
	LevelCounts     map[Level]int `json:"level_counts"`
}

// Result is the full aggregation
type Result struct {
	ScaleMin              int                `json:"scale_min"`
	ScaleMax              int                `json:"scale_max"`
	Summary               Summary            `json:"summary"`
	Questions             []QuestionResult   `json:"questions"`
	Dimensions            []DimensionResult  `json:"dimensions"`
	Departments           []DepartmentResult `json:"departments"`
	SuppressedDepartments int                `json:"suppressed_departments"`
	MinGroupSize          int                `json:"min_group_size"`
}

// Normalize maps a raw answer onto the risk axis: for negative polarity
// higher values already mean more risk, positive items are mirrored.
func Normalize(value int, polarity models.Polarity, scaleMin, scaleMax int) int {
	if polarity == models.PolarityPositive {
		return scaleMin + scaleMax - value
	}
	return value
}

// Classify buckets a risk mean by its position on the scale
func Classify(riskMean float64, scaleMin, scaleMax int) Level {
	span := float64(scaleMax - scaleMin)
	if span <= 0 {
		return LevelLow
	}
	p := (riskMean - float64(scaleMin)) / span
	switch {
	case p < 1.0/3.0:
		return LevelLow
	case p < 2.0/3.0:
		return LevelMedium
	default:
		return LevelHigh
	}
}

type accumulator struct {
	count       int
	rawSum      int
	riskSum     int
	favorable   int
	neutral     int
	unfavorable int
}

func (a *accumulator) add(raw, risk int, midpoint float64) {
	a.count++
	a.rawSum += raw
	a.riskSum += risk
	switch r := float64(risk); {
	case r < midpoint:
		a.favorable++
	case r > midpoint:
		a.unfavorable++
	default:
		a.neutral++
	}
}

func (a *accumulator) riskMean() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.riskSum) / float64(a.count)
}

func (a *accumulator) rawMean() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.rawSum) / float64(a.count)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func (a *accumulator) level(scaleMin, scaleMax int) Level {
	if a.count == 0 {
		return LevelLow
	}
	return Classify(a.riskMean(), scaleMin, scaleMax)
}

func emptyResult(scaleMin, scaleMax, minGroup int) *Result {
	return &Result{
		ScaleMin:     scaleMin,
		ScaleMax:     scaleMax,
		MinGroupSize: minGroup,
		Summary: Summary{
			Level:       LevelLow,
			LevelCounts: map[Level]int{LevelLow: 0, LevelMedium: 0, LevelHigh: 0},
		},
		Questions:   []QuestionResult{},
		Dimensions:  []DimensionResult{},
		Departments: []DepartmentResult{},
	}
}

// Compute runs the aggregation in a single pass over the rows. An inverted
// scale yields an empty result.
func Compute(in Input) *Result {
	minGroup := in.MinGroupSize
	if minGroup < 1 {
		minGroup = DefaultMinGroupSize
	}
	scaleMin, scaleMax := in.ScaleMin, in.ScaleMax
	if scaleMax < scaleMin {
		return emptyResult(scaleMin, scaleMax, minGroup)
	}
	midpoint := float64(scaleMin+scaleMax) / 2

	questions := make([]models.Question, len(in.Questions))
	copy(questions, in.Questions)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Position < questions[j].Position })

	byID := make(map[uuid.UUID]int, len(questions))
	var dimensionOrder []string
	dimensionQuestions := map[string]int{}
	for i, q := range questions {
		byID[q.ID] = i
		if _, seen := dimensionQuestions[q.Dimension]; !seen {
			dimensionOrder = append(dimensionOrder, q.Dimension)
		}
		dimensionQuestions[q.Dimension]++
	}

	perQuestion := make([]accumulator, len(questions))
	distribution := make([]map[int]int, len(questions))
	for i := range distribution {
		distribution[i] = map[int]int{}
	}
	perDimension := map[string]*accumulator{}
	for _, d := range dimensionOrder {
		perDimension[d] = &accumulator{}
	}
	overall := accumulator{}
	respondents := map[uuid.UUID]struct{}{}

	type deptAcc struct {
		respondents map[uuid.UUID]struct{}
		overall     accumulator
		dimensions  map[string]*accumulator
	}
	departments := map[string]*deptAcc{}

	for _, row := range in.Rows {
		idx, ok := byID[row.QuestionID]
		if !ok || row.Value < scaleMin || row.Value > scaleMax {
			continue
		}
		q := questions[idx]
		risk := Normalize(row.Value, q.Polarity, scaleMin, scaleMax)

		perQuestion[idx].add(row.Value, risk, midpoint)
		distribution[idx][row.Value]++
		perDimension[q.Dimension].add(row.Value, risk, midpoint)
		overall.add(row.Value, risk, midpoint)
		respondents[row.ResponseID] = struct{}{}

		if row.Department == "" {
			continue
		}
		dept, ok := departments[row.Department]
		if !ok {
			dept = &deptAcc{respondents: map[uuid.UUID]struct{}{}, dimensions: map[string]*accumulator{}}
			departments[row.Department] = dept
		}
		dept.respondents[row.ResponseID] = struct{}{}
		dept.overall.add(row.Value, risk, midpoint)
		acc, ok := dept.dimensions[q.Dimension]
		if !ok {
			acc = &accumulator{}
			dept.dimensions[q.Dimension] = acc
		}
		acc.add(row.Value, risk, midpoint)
	}

	result := &Result{
		ScaleMin:     scaleMin,
		ScaleMax:     scaleMax,
		MinGroupSize: minGroup,
		Questions:    make([]QuestionResult, 0, len(questions)),
		Dimensions:   make([]DimensionResult, 0, len(dimensionOrder)),
		Departments:  []DepartmentResult{},
	}

	for i, q := range questions {
		acc := perQuestion[i]
		points := make([]DistributionPoint, 0, scaleMax-scaleMin+1)
		for v := scaleMin; v <= scaleMax; v++ {
			points = append(points, DistributionPoint{
				Value:   v,
				Count:   distribution[i][v],
				Percent: percent(distribution[i][v], acc.count),
			})
		}
		result.Questions = append(result.Questions, QuestionResult{
			QuestionID:     q.ID,
			Position:       q.Position,
			Text:           q.Text,
			Dimension:      q.Dimension,
			Polarity:       q.Polarity,
			Count:          acc.count,
			Mean:           acc.rawMean(),
			RiskMean:       acc.riskMean(),
			Distribution:   points,
			FavorablePct:   percent(acc.favorable, acc.count),
			NeutralPct:     percent(acc.neutral, acc.count),
			UnfavorablePct: percent(acc.unfavorable, acc.count),
			Level:          acc.level(scaleMin, scaleMax),
		})
	}

	levelCounts := map[Level]int{LevelLow: 0, LevelMedium: 0, LevelHigh: 0}
	for _, d := range dimensionOrder {
		acc := perDimension[d]
		level := acc.level(scaleMin, scaleMax)
		levelCounts[level]++
		result.Dimensions = append(result.Dimensions, DimensionResult{
			Dimension:     d,
			QuestionCount: dimensionQuestions[d],
			Count:         acc.count,
			RiskMean:      acc.riskMean(),
			FavorablePct:  percent(acc.favorable, acc.count),
			Level:         level,
		})
	}

	result.Summary = Summary{
		Respondents:     len(respondents),
		Answers:         overall.count,
		OverallRiskMean: overall.riskMean(),
		Level:           overall.level(scaleMin, scaleMax),
		LevelCounts:     levelCounts,
	}

	names := make([]string, 0, len(departments))
	for name := range departments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dept := departments[name]
		if len(dept.respondents) < minGroup {
			result.SuppressedDepartments++
			continue
		}
		dr := DepartmentResult{
			Department:  name,
			Respondents: len(dept.respondents),
			RiskMean:    dept.overall.riskMean(),
			Level:       dept.overall.level(scaleMin, scaleMax),
			Dimensions:  make([]DimensionResult, 0, len(dimensionOrder)),
		}
		for _, d := range dimensionOrder {
			acc, ok := dept.dimensions[d]
			if !ok {
				continue
			}
			dr.Dimensions = append(dr.Dimensions, DimensionResult{
				Dimension:     d,
				QuestionCount: dimensionQuestions[d],
				Count:         acc.count,
				RiskMean:      acc.riskMean(),
				FavorablePct:  percent(acc.favorable, acc.count),
				Level:         acc.level(scaleMin, scaleMax),
			})
		}
		result.Departments = append(result.Departments, dr)
	}

	return result
}
