package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"psicomapa-backend/internal/database/models"
	"psicomapa-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	organizationsYAML = `organizations:
  - name: Acme Demo Ltda
    slug: acme-demo
    cnpj: "11222333000181"
    sector: Indústria
    employee_count: 250
`
	profilesYAML = `profiles:
  - user_id: 6f1c2b8e-5d4a-4c3b-9a2e-1f0e9d8c7b6a
    email: Admin@PsicoMapa.com.br
    full_name: Administrador
    role: platform_admin
  - user_id: 0b7e4d2a-3c1f-4e5d-8a9b-7c6d5e4f3a2b
    email: rh@acme-demo.com.br
    full_name: Maria RH
    role: org_admin
    organization_slug: acme-demo
`
	subscriptionsYAML = `subscriptions:
  - organization_slug: acme-demo
    plan_id: pro
    status: active
    current_period_end: "2027-01-31"
`
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	dir := writeFiles(t, map[string]string{
		"organizations.yaml": organizationsYAML,
		"profiles.yaml":      profilesYAML,
		"subscriptions.yaml": subscriptionsYAML,
	})

	result, err := Load(db, dir)
	require.NoError(t, err)
	assert.Equal(t, &Result{Organizations: 1, Profiles: 2, Subscriptions: 1}, result)

	var org models.Organization
	require.NoError(t, db.Where("slug = ?", "acme-demo").First(&org).Error)
	require.NotNil(t, org.CNPJ)
	assert.Equal(t, "11222333000181", *org.CNPJ)

	var admin models.Profile
	require.NoError(t, db.Where("email = ?", "admin@psicomapa.com.br").First(&admin).Error)
	assert.Equal(t, models.RolePlatformAdmin, admin.Role)
	assert.Nil(t, admin.OrganizationID)
	assert.Equal(t, "6f1c2b8e-5d4a-4c3b-9a2e-1f0e9d8c7b6a", admin.ID.String())

	var hr models.Profile
	require.NoError(t, db.Where("email = ?", "rh@acme-demo.com.br").First(&hr).Error)
	require.NotNil(t, hr.OrganizationID)
	assert.Equal(t, org.ID, *hr.OrganizationID)

	var sub models.Subscription
	require.NoError(t, db.Where("organization_id = ?", org.ID).First(&sub).Error)
	assert.Equal(t, "pro", sub.PlanID)
	assert.True(t, sub.Status.IsEntitled())
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.Equal(t, 2027, sub.CurrentPeriodEnd.Year())

	t.Run("Idempotent", func(t *testing.T) {
		again, err := Load(db, dir)
		require.NoError(t, err)
		assert.Equal(t, &Result{}, again)

		var count int64
		db.Model(&models.Profile{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})
}

func TestLoadMissingFiles(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	result, err := Load(db, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Result{}, result)
}

func TestLoadRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "unknown role",
			files: map[string]string{"profiles.yaml": "profiles:\n  - user_id: 6f1c2b8e-5d4a-4c3b-9a2e-1f0e9d8c7b6a\n    email: a@b.com\n    role: owner\n"},
			want:  "unknown role",
		},
		{
			name:  "invalid user id",
			files: map[string]string{"profiles.yaml": "profiles:\n  - user_id: nope\n    email: a@b.com\n    role: viewer\n"},
			want:  "invalid user_id",
		},
		{
			name:  "org role without organization",
			files: map[string]string{"profiles.yaml": "profiles:\n  - user_id: 6f1c2b8e-5d4a-4c3b-9a2e-1f0e9d8c7b6a\n    email: a@b.com\n    role: manager\n"},
			want:  "organization_slug is required",
		},
		{
			name:  "subscription for unknown organization",
			files: map[string]string{"subscriptions.yaml": "subscriptions:\n  - organization_slug: ghost\n    plan_id: basic\n"},
			want:  "unknown organization",
		},
		{
			name:  "organization without slug",
			files: map[string]string{"organizations.yaml": "organizations:\n  - name: Sem slug\n"},
			want:  "requires name and slug",
		},
		{
			name:  "malformed yaml",
			files: map[string]string{"organizations.yaml": "organizations: [\n"},
			want:  "parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.NewSQLiteDB(t)
			_, err := Load(db, writeFiles(t, tt.files))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRollsBackOnError(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	dir := writeFiles(t, map[string]string{
		"organizations.yaml": organizationsYAML,
		"subscriptions.yaml": "subscriptions:\n  - organization_slug: ghost\n    plan_id: basic\n",
	})

	_, err := Load(db, dir)
	require.Error(t, err)

	var count int64
	db.Model(&models.Organization{}).Count(&count)
	assert.Zero(t, count)
}
