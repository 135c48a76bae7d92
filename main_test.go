package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"souq/internal/cart"
	"souq/internal/models"
	"souq/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBuildApp(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Company{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	authService, err := services.NewAuthService("admin", "admin123", "test_jwt_secret")
	require.NoError(t, err)

	app := buildApp(db, authService, nil, cart.NewMemoryStorage())

	// Health endpoint is up.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Public storefront routes answer without a token.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Backoffice routes are gated.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestOpenDatabaseDefaultsToSQLite(t *testing.T) {
	t.Chdir(t.TempDir())

	db, err := openDatabase("")
	require.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}))
}
