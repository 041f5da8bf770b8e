package report

import (
	"fmt"

	"psicomapa-backend/internal/analytics"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary     = "Resumo"
	sheetDimensions  = "Dimensões"
	sheetQuestions   = "Questões"
	sheetDepartments = "Departamentos"
)

var levelFill = map[analytics.Level]string{
	analytics.LevelLow:    "C6EFCE",
	analytics.LevelMedium: "FFEB9C",
	analytics.LevelHigh:   "FFC7CE",
}

type xlsxWriter struct {
	f           *excelize.File
	headerStyle int
	levelStyle  map[analytics.Level]int
}

// RenderXLSX builds the analytics workbook
func RenderXLSX(data *Data) ([]byte, error) {
	if data == nil || data.Result == nil {
		return nil, fmt.Errorf("report data is empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &xlsxWriter{f: f, levelStyle: map[analytics.Level]int{}}
	if err := w.styles(); err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetDimensions, sheetQuestions, sheetDepartments} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	for _, step := range []func(*Data) error{w.summary, w.dimensions, w.questions, w.departments} {
		if err := step(data); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *xlsxWriter) styles() error {
	var err error
	w.headerStyle, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for level, color := range levelFill {
		id, err := w.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("level style: %w", err)
		}
		w.levelStyle[level] = id
	}
	return nil
}

func (w *xlsxWriter) row(sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(sheet, cell, &values)
}

func (w *xlsxWriter) header(sheet string, columns ...interface{}) error {
	if err := w.row(sheet, 1, columns...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, "A1", last, w.headerStyle)
}

func (w *xlsxWriter) paintLevel(sheet string, col, row int, level analytics.Level) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, cell, cell, w.levelStyle[level])
}

func (w *xlsxWriter) summary(d *Data) error {
	s := d.Result.Summary
	rows := [][]interface{}{
		{"Organização", d.OrganizationName},
		{"CNPJ", d.OrganizationCNPJ},
		{"Avaliação", d.AssessmentTitle},
		{"Período", d.Period()},
		{"Respondentes", s.Respondents},
		{"Respostas", s.Answers},
		{"Média de risco geral", round2(s.OverallRiskMean)},
		{"Nível de risco geral", LevelLabel(s.Level)},
		{"Dimensões em risco alto", s.LevelCounts[analytics.LevelHigh]},
		{"Dimensões em risco médio", s.LevelCounts[analytics.LevelMedium]},
		{"Dimensões em risco baixo", s.LevelCounts[analytics.LevelLow]},
		{"Escala", fmt.Sprintf("%d a %d", d.Result.ScaleMin, d.Result.ScaleMax)},
		{"Gerado em", d.GeneratedAt.Format("02/01/2006 15:04")},
	}
	for i, r := range rows {
		if err := w.row(sheetSummary, i+1, r...); err != nil {
			return fmt.Errorf("summary row: %w", err)
		}
	}
	if err := w.paintLevel(sheetSummary, 2, 8, s.Level); err != nil {
		return err
	}
	return w.f.SetColWidth(sheetSummary, "A", "B", 32)
}

func (w *xlsxWriter) dimensions(d *Data) error {
	if err := w.header(sheetDimensions, "Dimensão", "Questões", "Respostas", "Média de risco", "% Favorável", "Nível"); err != nil {
		return fmt.Errorf("dimensions header: %w", err)
	}
	for i, dim := range d.Result.Dimensions {
		row := i + 2
		if err := w.row(sheetDimensions, row, dim.Dimension, dim.QuestionCount, dim.Count,
			round2(dim.RiskMean), round2(dim.FavorablePct), LevelLabel(dim.Level)); err != nil {
			return fmt.Errorf("dimensions row: %w", err)
		}
		if err := w.paintLevel(sheetDimensions, 6, row, dim.Level); err != nil {
			return err
		}
	}
	return w.f.SetColWidth(sheetDimensions, "A", "A", 40)
}

func (w *xlsxWriter) questions(d *Data) error {
	columns := []interface{}{"#", "Pergunta", "Dimensão", "Polaridade", "Respostas", "Média", "Média de risco"}
	for v := d.Result.ScaleMin; v <= d.Result.ScaleMax; v++ {
		columns = append(columns, fmt.Sprintf("%% %d", v))
	}
	columns = append(columns, "% Favorável", "% Neutro", "% Desfavorável", "Nível")
	if err := w.header(sheetQuestions, columns...); err != nil {
		return fmt.Errorf("questions header: %w", err)
	}

	for i, q := range d.Result.Questions {
		row := i + 2
		values := []interface{}{q.Position, q.Text, q.Dimension, string(q.Polarity), q.Count, round2(q.Mean), round2(q.RiskMean)}
		for _, p := range q.Distribution {
			values = append(values, round2(p.Percent))
		}
		values = append(values, round2(q.FavorablePct), round2(q.NeutralPct), round2(q.UnfavorablePct), LevelLabel(q.Level))
		if err := w.row(sheetQuestions, row, values...); err != nil {
			return fmt.Errorf("questions row: %w", err)
		}
		if err := w.paintLevel(sheetQuestions, len(values), row, q.Level); err != nil {
			return err
		}
	}
	return w.f.SetColWidth(sheetQuestions, "B", "B", 60)
}

func (w *xlsxWriter) departments(d *Data) error {
	columns := []interface{}{"Departamento", "Respondentes", "Média de risco", "Nível"}
	for _, dim := range d.Result.Dimensions {
		columns = append(columns, dim.Dimension)
	}
	if err := w.header(sheetDepartments, columns...); err != nil {
		return fmt.Errorf("departments header: %w", err)
	}

	row := 2
	for _, dept := range d.Result.Departments {
		values := []interface{}{dept.Department, dept.Respondents, round2(dept.RiskMean), LevelLabel(dept.Level)}
		for _, dim := range d.Result.Dimensions {
			if mean, ok := dept.RiskMeanOf(dim.Dimension); ok {
				values = append(values, round2(mean))
			} else {
				values = append(values, "-")
			}
		}
		if err := w.row(sheetDepartments, row, values...); err != nil {
			return fmt.Errorf("departments row: %w", err)
		}
		if err := w.paintLevel(sheetDepartments, 4, row, dept.Level); err != nil {
			return err
		}
		row++
	}
	if d.Result.SuppressedDepartments > 0 {
		note := fmt.Sprintf("%d departamento(s) com menos de %d respondentes omitido(s) para preservar o anonimato.",
			d.Result.SuppressedDepartments, d.Result.MinGroupSize)
		if err := w.row(sheetDepartments, row+1, note); err != nil {
			return err
		}
	}
	return w.f.SetColWidth(sheetDepartments, "A", "A", 30)
}
