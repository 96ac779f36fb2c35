package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var document struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &document))
	paths := []string{
		"/api/register",
		"/api/auth/login",
		"/api/auth/refresh",
		"/api/auth/logout",
		"/api/accounts",
		"/api/accounts/{customer_id}",
		"/api/accounts/{customer_id}/{account_id}",
		"/api/customers/{customer_id}/profile",
	}
	for _, path := range paths {
		assert.Contains(t, document.Paths, path)
	}
}
