package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Month buckets outlive the month they meter so late reads still work.
const creditKeyTTL = 40 * 24 * time.Hour

// CreditMeter counts per-organization AI credit usage by calendar month.
// The counter lives in Redis so it survives restarts and is shared by
// every instance; without Redis it degrades to a per-process map, which
// errs in the tenant's favor.
type CreditMeter struct {
	client *redis.Client

	mu    sync.Mutex
	local map[string]int64
	month string
}

// NewCreditMeter creates a credit meter. A nil client selects the
// in-process fallback.
func NewCreditMeter(client *redis.Client) *CreditMeter {
	return &CreditMeter{client: client, local: make(map[string]int64)}
}

func creditKey(orgID uuid.UUID, month string) string {
	return fmt.Sprintf("synthex:ai_credits:%s:%s", orgID, month)
}

// Consume takes one credit if any remain this month. A limit of -1 means
// unlimited.
func (m *CreditMeter) Consume(ctx context.Context, orgID uuid.UUID, limit int) bool {
	month := time.Now().Format("2006-01")

	if m.client == nil {
		return m.consumeLocal(orgID, month, limit)
	}

	key := creditKey(orgID, month)
	count, err := m.client.Incr(ctx, key).Result()
	if err != nil {
		logrus.WithError(err).Warn("credit meter unavailable, using in-process fallback")
		return m.consumeLocal(orgID, month, limit)
	}
	if count == 1 {
		m.client.Expire(ctx, key, creditKeyTTL)
	}

	if limit >= 0 && count > int64(limit) {
		// Roll the increment back so Used stays accurate.
		m.client.Decr(ctx, key)
		return false
	}
	return true
}

// Used returns the credits the organization has consumed this month
func (m *CreditMeter) Used(ctx context.Context, orgID uuid.UUID) int64 {
	month := time.Now().Format("2006-01")

	if m.client == nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.month != month {
			return 0
		}
		return m.local[orgID.String()]
	}

	count, err := m.client.Get(ctx, creditKey(orgID, month)).Int64()
	if err != nil {
		return 0
	}
	return count
}

func (m *CreditMeter) consumeLocal(orgID uuid.UUID, month string, limit int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.month != month {
		m.month = month
		m.local = make(map[string]int64)
	}

	key := orgID.String()
	if !withinLimit(m.local[key], limit) {
		return false
	}
	m.local[key]++
	return true
}
