package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// createGameRouter mounts CreateGame behind a stub that injects the
// authenticated username the way the auth middleware does.
func createGameRouter(t *testing.T, username string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewCatalogHandler(storage.NewMemoryStore(), &config.Config{})

	router := gin.New()
	router.POST("/games", func(c *gin.Context) {
		if username != "" {
			c.Set("username", username)
		}
		c.Next()
	}, handler.CreateGame)
	return router
}

func postCreateGame(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func listingPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Hades",
		"price":     15.0,
		"category":  "Action",
		"platforms": []string{"Switch"},
		"condition": "Good",
	}
}

func TestCreateGameDefaultsSellerToAuthenticatedUser(t *testing.T) {
	router := createGameRouter(t, "gamer1")

	rec := postCreateGame(t, router, listingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data catalog.Game `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gamer1", resp.Data.Seller)
	assert.Equal(t, "Hades", resp.Data.Title)
	assert.NotZero(t, resp.Data.ID)
}

func TestCreateGameExplicitSellerWins(t *testing.T) {
	router := createGameRouter(t, "gamer1")

	payload := listingPayload()
	payload["seller"] = "RetroHaven"

	rec := postCreateGame(t, router, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data catalog.Game `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RetroHaven", resp.Data.Seller)
}

func TestCreateGameWithoutSellerOrIdentity(t *testing.T) {
	router := createGameRouter(t, "")

	rec := postCreateGame(t, router, listingPayload())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
