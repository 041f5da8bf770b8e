// Package report renders assessment analytics as XLSX workbooks and NR-1 PDF reports.
package report

import (
	"time"

	"psicomapa-backend/internal/analytics"
	"psicomapa-backend/internal/database/models"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Data is what both renderers consume
type Data struct {
	OrganizationName  string
	OrganizationCNPJ  string
	AssessmentTitle   string
	QuestionnaireKind models.QuestionnaireKind
	StartsAt          *time.Time
	EndsAt            *time.Time
	ClosedAt          *time.Time
	GeneratedAt       time.Time
	Result            *analytics.Result
	ActionItems       []models.ActionItem
}

// LevelLabel is the Portuguese label printed for a risk level
func LevelLabel(l analytics.Level) string {
	switch l {
	case analytics.LevelHigh:
		return "Alto"
	case analytics.LevelMedium:
		return "Médio"
	default:
		return "Baixo"
	}
}

// ActionStatusLabel is the Portuguese label for an action item status
func ActionStatusLabel(s models.ActionStatus) string {
	switch s {
	case models.ActionStatusInProgress:
		return "Em andamento"
	case models.ActionStatusDone:
		return "Concluída"
	default:
		return "Pendente"
	}
}

// Recommendation returns the guidance paragraph printed for a risk level
func Recommendation(l analytics.Level) string {
	switch l {
	case analytics.LevelHigh:
		return "Risco alto: priorizar medidas de controle imediatas, envolver a liderança e a CIPA, " +
			"registrar as ações no inventário de riscos do PGR e reavaliar em até 90 dias."
	case analytics.LevelMedium:
		return "Risco médio: planejar ações preventivas com responsáveis e prazos definidos " +
			"e acompanhar a evolução na próxima avaliação."
	default:
		return "Risco baixo: manter as práticas atuais e monitorar periodicamente."
	}
}

// Period formats the collection window
func (d *Data) Period() string {
	const layout = "02/01/2006"
	switch {
	case d.StartsAt != nil && d.EndsAt != nil:
		return d.StartsAt.Format(layout) + " a " + d.EndsAt.Format(layout)
	case d.StartsAt != nil && d.ClosedAt != nil:
		return d.StartsAt.Format(layout) + " a " + d.ClosedAt.Format(layout)
	case d.StartsAt != nil:
		return "desde " + d.StartsAt.Format(layout)
	default:
		return "-"
	}
}

// Filename builds an attachment name from the assessment title
func Filename(title, ext string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		r = foldAccent(r)
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "relatorio." + ext
	}
	return "relatorio-" + string(out) + "." + ext
}
