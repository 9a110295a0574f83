package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createContactBody struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=100"`
	LeadScore int    `json:"lead_score" validate:"omitempty,min=0,max=100"`
}

type idParams struct {
	ID string `uri:"id" validate:"required,uuid"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestBodyValid(t *testing.T) {
	router := setupRouter()
	router.POST("/contacts", func(c *gin.Context) {
		req, ok := Body[createContactBody](c)
		require.True(t, ok)
		c.JSON(http.StatusOK, req)
	})

	recorder := doRequest(router, "POST", "/contacts", map[string]interface{}{
		"email": "jo@example.com", "first_name": "Jo",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBodyMissingRequiredField(t *testing.T) {
	router := setupRouter()
	router.POST("/contacts", func(c *gin.Context) {
		if _, ok := Body[createContactBody](c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	recorder := doRequest(router, "POST", "/contacts", map[string]interface{}{
		"first_name": "Jo",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "email", resp.Details[0].Field)
	assert.Equal(t, "is required", resp.Details[0].Message)
}

func TestBodyInvalidEmail(t *testing.T) {
	router := setupRouter()
	router.POST("/contacts", func(c *gin.Context) {
		if _, ok := Body[createContactBody](c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	recorder := doRequest(router, "POST", "/contacts", map[string]interface{}{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "must be a valid email address", resp.Details[0].Message)
}

func TestBodyMalformedJSON(t *testing.T) {
	router := setupRouter()
	router.POST("/contacts", func(c *gin.Context) {
		if _, ok := Body[createContactBody](c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("POST", "/contacts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
}

func TestURIRejectsInvalidUUID(t *testing.T) {
	router := setupRouter()
	router.GET("/contacts/:id", func(c *gin.Context) {
		if _, ok := URI[idParams](c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	recorder := doRequest(router, "GET", "/contacts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(router, "GET", "/contacts/7b7cf005-807a-43ae-9e33-3e1a3cc2d0b7", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestQueryPaginationBounds(t *testing.T) {
	router := setupRouter()
	router.GET("/contacts", func(c *gin.Context) {
		p, ok := Query[Pagination](c)
		if !ok {
			return
		}
		limit, offset := p.LimitOffset()
		c.JSON(http.StatusOK, gin.H{"limit": limit, "offset": offset})
	})

	// defaults
	recorder := doRequest(router, "GET", "/contacts", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"limit":20,"offset":0}`, recorder.Body.String())

	// explicit paging
	recorder = doRequest(router, "GET", "/contacts?page=3&page_size=10", nil)
	assert.JSONEq(t, `{"limit":10,"offset":20}`, recorder.Body.String())

	// over the cap
	recorder = doRequest(router, "GET", "/contacts?page_size=500", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBindAllMergesURIAndBody(t *testing.T) {
	type updateRequest struct {
		ID   string `uri:"id" validate:"required,uuid"`
		Name string `json:"name" validate:"required"`
	}

	router := setupRouter()
	router.PUT("/workspaces/:id", func(c *gin.Context) {
		req, ok := BindAll[updateRequest](c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": req.ID, "name": req.Name})
	})

	recorder := doRequest(router, "PUT", "/workspaces/7b7cf005-807a-43ae-9e33-3e1a3cc2d0b7",
		map[string]interface{}{"name": "Marketing"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, "PUT", "/workspaces/7b7cf005-807a-43ae-9e33-3e1a3cc2d0b7",
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
