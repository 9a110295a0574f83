package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(client *redis.Client, limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(client, limit, window))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func doPing(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

// TestRateLimitDisabled tests that a nil client turns the limiter into a no-op
func TestRateLimitDisabled(t *testing.T) {
	router := newLimitedRouter(nil, 2, time.Minute)

	for i := 0; i < 10; i++ {
		recorder := doPing(router)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}

// TestRateLimitFailsOpen tests that an unreachable Redis lets requests through
func TestRateLimitFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // nothing listens here
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	router := newLimitedRouter(client, 2, time.Minute)

	recorder := doPing(router)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

// TestRateLimitWindow tests the fixed-window counter against a real Redis
func TestRateLimitWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis-backed rate limiter test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not connect to docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start redis")
	defer func() { _ = pool.Purge(resource) }()

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	pool.MaxWait = 30 * time.Second
	require.NoError(t, pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	}))

	// An hour-long window keeps the whole test inside one bucket.
	router := newLimitedRouter(client, 3, time.Hour)

	for i := 0; i < 3; i++ {
		recorder := doPing(router)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "3", recorder.Header().Get("X-RateLimit-Limit"))
	}

	recorder := doPing(router)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, recorder.Header().Get("Retry-After"))

	// A bearer token gets its own budget even from the same address.
	authed := func(token string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		return rec
	}
	assert.Equal(t, http.StatusOK, authed("token-one").Code)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, authed("token-two").Code)
	}
	assert.Equal(t, http.StatusOK, authed("token-two").Code)
	assert.Equal(t, http.StatusTooManyRequests, authed("token-two").Code)
}
