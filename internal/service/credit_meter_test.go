package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"synthex-backend/internal/service"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreditMeterLocalFallback tests the in-process counter used when no
// Redis is configured
func TestCreditMeterLocalFallback(t *testing.T) {
	meter := service.NewCreditMeter(nil)
	ctx := context.Background()
	orgID := uuid.New()

	for i := 0; i < 3; i++ {
		assert.True(t, meter.Consume(ctx, orgID, 3))
	}
	assert.False(t, meter.Consume(ctx, orgID, 3))
	assert.Equal(t, int64(3), meter.Used(ctx, orgID))

	// unlimited tier never exhausts
	other := uuid.New()
	for i := 0; i < 10; i++ {
		assert.True(t, meter.Consume(ctx, other, -1))
	}
}

// TestCreditMeterSharedAcrossInstances tests that usage lives in Redis,
// so an exhausted organization stays exhausted for every instance and
// across restarts
func TestCreditMeterSharedAcrossInstances(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis-backed credit meter test in short mode")
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

	ctx := context.Background()
	orgID := uuid.New()

	// Two meters on the same Redis stand in for two server instances.
	first := service.NewCreditMeter(client)
	second := service.NewCreditMeter(client)

	for i := 0; i < 5; i++ {
		require.True(t, first.Consume(ctx, orgID, 5))
	}

	assert.False(t, first.Consume(ctx, orgID, 5))
	assert.False(t, second.Consume(ctx, orgID, 5), "a fresh instance must see the shared usage")

	// The rejected attempts do not inflate the reported usage.
	assert.Equal(t, int64(5), first.Used(ctx, orgID))
	assert.Equal(t, int64(5), second.Used(ctx, orgID))

	// Another organization is unaffected.
	assert.True(t, second.Consume(ctx, uuid.New(), 5))
}
