package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterDuplicateEmailAnyCase(t *testing.T) {
	db := setupTestDB(t)
	email := "dana@example.com"
	assert.NoError(t, db.Create(&models.User{Email: &email, FullName: "דנה"}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", NewUserController(nil, &config.Config{}).Register)

	// The stored address is lowercase; a differently-cased signup must hit
	// the duplicate check here, not fail later at account creation.
	body, _ := json.Marshal(map[string]string{"email": "Dana@Example.com"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "כבר קיים")
}
