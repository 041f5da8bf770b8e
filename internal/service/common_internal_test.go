package service

import (
	"errors"
	"testing"

	"psicomapa-backend/internal/auth"
	"psicomapa-backend/internal/database/models"
	apperrors "psicomapa-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"
)

func TestValidCNPJ(t *testing.T) {
	valid := []string{"11222333000181", "11444777000161", "12345678000195"}
	for _, cnpj := range valid {
		assert.True(t, ValidCNPJ(cnpj), cnpj)
	}

	invalid := []string{"", "11222333000182", "1122233300018", "11111111111111", "1122233300018a"}
	for _, cnpj := range invalid {
		assert.False(t, ValidCNPJ(cnpj), cnpj)
	}
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11222333000181", OnlyDigits("11.222.333/0001-81"))
	assert.Equal(t, "", OnlyDigits("n/a"))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Metalúrgica São João":    "metalurgica-sao-joao",
		"  Ação   Social  ":       "acao-social",
		"acme_indústria.ltda":     "acme-industria-ltda",
		"Clima 2026 - Q1":         "clima-2026-q1",
		"!!!":                     "",
		"Coração & Companhia S/A": "coracao-companhia-sa",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestPaginate(t *testing.T) {
	page, size, offset := paginate(0, 0)
	assert.Equal(t, []int{1, 20, 0}, []int{page, size, offset})

	page, size, offset = paginate(3, 50)
	assert.Equal(t, []int{3, 50, 100}, []int{page, size, offset})

	_, size, _ = paginate(1, 101)
	assert.Equal(t, 20, size)
}

func TestResolveOrganization(t *testing.T) {
	orgID := uuid.New()
	other := uuid.New()
	manager := &auth.Identity{Role: models.RoleManager, OrganizationID: &orgID}
	admin := &auth.Identity{Role: models.RolePlatformAdmin}

	t.Run("own organization by default", func(t *testing.T) {
		got, err := resolveOrganization(manager, nil)
		require.NoError(t, err)
		assert.Equal(t, orgID, got)
	})

	t.Run("naming another tenant is rejected", func(t *testing.T) {
		_, err := resolveOrganization(manager, &other)
		assert.ErrorIs(t, err, apperrors.ErrCrossTenantAccess)
	})

	t.Run("platform admin names any tenant", func(t *testing.T) {
		got, err := resolveOrganization(admin, &other)
		require.NoError(t, err)
		assert.Equal(t, other, got)
	})

	t.Run("platform admin without a target", func(t *testing.T) {
		_, err := resolveOrganization(admin, nil)
		assert.ErrorIs(t, err, apperrors.ErrNoOrganization)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := resolveOrganization(nil, nil)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound, apperrors.ErrAssessmentNotFound, "get assessment"), apperrors.ErrAssessmentNotFound)

	err := notFound(errors.New("timeout"), apperrors.ErrAssessmentNotFound, "get assessment")
	assert.EqualError(t, err, "failed to get assessment: timeout")
}

func TestMapStripeStatus(t *testing.T) {
	cases := map[stripe.SubscriptionStatus]models.SubscriptionStatus{
		"active":             models.SubscriptionStatusActive,
		"trialing":           models.SubscriptionStatusTrialing,
		"past_due":           models.SubscriptionStatusPastDue,
		"canceled":           models.SubscriptionStatusCanceled,
		"incomplete_expired": models.SubscriptionStatusCanceled,
		"unpaid":             models.SubscriptionStatusUnpaid,
		"paused":             models.SubscriptionStatusUnpaid,
		"incomplete":         models.SubscriptionStatusIncomplete,
		"something_new":      models.SubscriptionStatusIncomplete,
	}
	for in, want := range cases {
		assert.Equal(t, want, mapStripeStatus(in), string(in))
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 199,00", formatBRL(19900, "brl"))
	assert.Equal(t, "R$ 0,05", formatBRL(5, ""))
	assert.Equal(t, "USD 49.90", formatBRL(4990, "usd"))
}
