package report

import (
	"bytes"
	"fmt"

	"psicomapa-backend/internal/analytics"

	"github.com/go-pdf/fpdf"
)

var levelRGB = map[analytics.Level][3]int{
	analytics.LevelLow:    {198, 239, 206},
	analytics.LevelMedium: {255, 235, 156},
	analytics.LevelHigh:   {255, 199, 206},
}

const lineH = 6.0

// RenderPDF builds the NR-1 psychosocial risk report
func RenderPDF(data *Data) ([]byte, error) {
	if data == nil || data.Result == nil {
		return nil, fmt.Errorf("report data is empty")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório NR-1", true)
	pdf.SetAuthor("PsicoMapa", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("PsicoMapa - página %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Riscos Psicossociais (NR-1)"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	header := [][2]string{{"Organização", data.OrganizationName}}
	if data.OrganizationCNPJ != "" {
		header = append(header, [2]string{"CNPJ", data.OrganizationCNPJ})
	}
	header = append(header,
		[2]string{"Avaliação", data.AssessmentTitle},
		[2]string{"Período", data.Period()},
		[2]string{"Respondentes", fmt.Sprintf("%d", data.Result.Summary.Respondents)},
		[2]string{"Gerado em", data.GeneratedAt.Format("02/01/2006 15:04")},
	)
	for _, h := range header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, lineH, tr(h[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, lineH, tr(h[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Overall risk
	s := data.Result.Summary
	section(pdf, tr, "Resultado geral")
	setLevelFill(pdf, s.Level)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Nível de risco geral: %s (média %.2f)", LevelLabel(s.Level), s.OverallRiskMean)),
		"1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineH, tr(fmt.Sprintf("Dimensões em risco alto: %d, médio: %d, baixo: %d.",
		s.LevelCounts[analytics.LevelHigh], s.LevelCounts[analytics.LevelMedium], s.LevelCounts[analytics.LevelLow])), "", "L", false)
	pdf.Ln(4)

	// Dimensions
	section(pdf, tr, "Dimensões avaliadas")
	widths := []float64{90, 25, 30, 45}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Dimensão", "Respostas", "Média", "Nível"} {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, dim := range data.Result.Dimensions {
		setLevelFill(pdf, dim.Level)
		pdf.CellFormat(widths[0], 7, tr(truncate(dim.Dimension, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", dim.Count), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", dim.RiskMean), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, tr(LevelLabel(dim.Level)), "1", 1, "C", true, 0, "")
	}
	pdf.Ln(4)

	// Recommendations for the levels present
	section(pdf, tr, "Recomendações")
	pdf.SetFont("Helvetica", "", 10)
	for i := len(analytics.Levels) - 1; i >= 0; i-- {
		level := analytics.Levels[i]
		if s.LevelCounts[level] == 0 {
			continue
		}
		pdf.MultiCell(0, lineH, tr("- "+Recommendation(level)), "", "L", false)
	}
	pdf.Ln(4)

	// Action plan
	section(pdf, tr, "Plano de ação")
	pdf.SetFont("Helvetica", "", 10)
	if len(data.ActionItems) == 0 {
		pdf.MultiCell(0, lineH, tr("Nenhuma ação cadastrada para esta avaliação."), "", "L", false)
	}
	for _, item := range data.ActionItems {
		due := "sem prazo"
		if item.DueDate != nil {
			due = item.DueDate.Format("02/01/2006")
		}
		line := fmt.Sprintf("[%s] %s: %s (responsável: %s, prazo: %s)",
			ActionStatusLabel(item.Status), item.Dimension, item.Description, orDash(item.Owner), due)
		pdf.MultiCell(0, lineH, tr(line), "", "L", false)
	}

	if data.Result.SuppressedDepartments > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf(
			"Resultados por departamento com menos de %d respondentes não são exibidos para preservar o anonimato.",
			data.Result.MinGroupSize)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func setLevelFill(pdf *fpdf.Fpdf, level analytics.Level) {
	c := levelRGB[level]
	pdf.SetFillColor(c[0], c[1], c[2])
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
