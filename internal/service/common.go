package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"psicomapa-backend/internal/auth"
	apperrors "psicomapa-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator returns a validator with the domain validations registered
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return ValidCNPJ(fl.Field().String())
	})
	return v
}

// ValidCNPJ checks the length and both check digits of a CNPJ (digits only)
func ValidCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	digits := make([]int, 14)
	same := true
	for i, r := range cnpj {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return false
	}

	check := func(n int) int {
		weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}[13-n:]
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * weights[i]
		}
		if r := sum % 11; r >= 2 {
			return 11 - r
		}
		return 0
	}
	return check(12) == digits[12] && check(13) == digits[13]
}

// OnlyDigits strips punctuation from documents like CNPJ
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'ê': 'e', 'è': 'e',
	'í': 'i', 'ì': 'i',
	'ó': 'o', 'ô': 'o', 'õ': 'o', 'ò': 'o',
	'ú': 'u', 'ü': 'u', 'ù': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Slugify lowercases, folds Portuguese accents and joins words with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// validationFailed wraps validator errors so handlers can answer 400
func validationFailed(err error) error {
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

// paginate clamps page and pageSize and returns the offset
func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// authorizeOrganization checks the caller may act on orgID's data
func authorizeOrganization(identity *auth.Identity, orgID uuid.UUID) error {
	if identity == nil {
		return apperrors.ErrForbidden
	}
	if !identity.CanAccessOrganization(orgID) {
		return apperrors.ErrCrossTenantAccess
	}
	return nil
}

// resolveOrganization picks the organization a request operates on. Platform
// admins may name any organization; everyone else gets their own.
func resolveOrganization(identity *auth.Identity, requested *uuid.UUID) (uuid.UUID, error) {
	if identity == nil {
		return uuid.Nil, apperrors.ErrForbidden
	}
	if requested != nil && *requested != uuid.Nil {
		if err := authorizeOrganization(identity, *requested); err != nil {
			return uuid.Nil, err
		}
		return *requested, nil
	}
	if identity.OrganizationID == nil {
		return uuid.Nil, apperrors.ErrNoOrganization
	}
	return *identity.OrganizationID, nil
}

// notFound translates gorm's not found into the entity sentinel
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// tracerOrNoop lets callers pass a nil tracer
func tracerOrNoop(t trace.Tracer) trace.Tracer {
	if t == nil {
		return noop.NewTracerProvider().Tracer("psicomapa-backend")
	}
	return t
}
