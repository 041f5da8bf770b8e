package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocumentIsRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger  string                                `json:"swagger"`
		Info     map[string]interface{}                `json:"info"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
		Security map[string]interface{}                `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "PsicoMapa API", doc.Info["title"])
	assert.Contains(t, doc.Security, "BearerAuth")
	assert.Contains(t, doc.Paths["/api/webhooks/stripe"], "post")
	assert.Contains(t, doc.Paths["/api/public/assessments/{token}/responses"], "post")
	assert.Contains(t, doc.Paths["/api/v1/assessments/{id}/activate"], "post")
	assert.Contains(t, doc.Paths["/api/v1/billing/checkout"], "post")
	assert.Contains(t, doc.Paths["/health/ready"], "get")
}
