package api_test

import (
	"testing"

	"marketplace/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{orderId}/transitions"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/ready"))
	assert.Contains(t, doc.Components.Schemas, "Order")
}

func TestRegisterSwagger(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	require.NoError(t, api.RegisterSwagger(doc))

	body, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, body, "/api/v1/orders")
}
