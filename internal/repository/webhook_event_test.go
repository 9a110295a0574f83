package repository

import (
	"testing"
	"time"

	"synthex-backend/internal/database/models"
	"synthex-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WebhookEventRepositoryTestSuite tests the WebhookEventRepository
type WebhookEventRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WebhookEventRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WebhookEventRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWebhookEventRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WebhookEventRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WebhookEventRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WebhookEventRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestInsert tests recording a first-time event delivery
func (suite *WebhookEventRepositoryTestSuite) TestInsert() {
	event := suite.factories.WebhookEvent.Create()

	created, err := suite.repo.Insert(event)

	suite.NoError(err)
	suite.True(created)
}

// TestInsertDuplicate tests that a retried delivery of the same event
// is reported as already seen instead of creating a second row
func (suite *WebhookEventRepositoryTestSuite) TestInsertDuplicate() {
	event := suite.factories.WebhookEvent.Create()
	created, err := suite.repo.Insert(event)
	suite.NoError(err)
	suite.True(created)

	retry := suite.factories.WebhookEvent.Create()
	retry.EventID = event.EventID
	retry.Provider = event.Provider

	created, err = suite.repo.Insert(retry)

	suite.NoError(err)
	suite.False(created)

	// only the original row exists
	stored, err := suite.repo.GetByProviderEventID(event.Provider, event.EventID)
	suite.NoError(err)
	suite.Equal(event.ID, stored.ID)
}

// TestMarkProcessed tests recording successful processing
func (suite *WebhookEventRepositoryTestSuite) TestMarkProcessed() {
	event := suite.factories.WebhookEvent.Create()
	_, err := suite.repo.Insert(event)
	suite.NoError(err)

	now := time.Now()
	err = suite.repo.MarkProcessed(event.ID, now)
	suite.NoError(err)

	stored, err := suite.repo.GetByProviderEventID(event.Provider, event.EventID)
	suite.NoError(err)
	suite.Equal(models.WebhookProcessed, stored.Status)
	suite.NotNil(stored.ProcessedAt)
}

// TestMarkFailed tests recording a processing failure
func (suite *WebhookEventRepositoryTestSuite) TestMarkFailed() {
	event := suite.factories.WebhookEvent.Create()
	_, err := suite.repo.Insert(event)
	suite.NoError(err)

	err = suite.repo.MarkFailed(event.ID, "subscription lookup failed")
	suite.NoError(err)

	stored, err := suite.repo.GetByProviderEventID(event.Provider, event.EventID)
	suite.NoError(err)
	suite.Equal(models.WebhookFailed, stored.Status)
	suite.Equal("subscription lookup failed", stored.Error)
}

// TestDeleteOlderThan tests pruning old event rows
func (suite *WebhookEventRepositoryTestSuite) TestDeleteOlderThan() {
	oldEvent := suite.factories.WebhookEvent.Create()
	_, err := suite.repo.Insert(oldEvent)
	suite.NoError(err)
	err = suite.repo.MarkProcessed(oldEvent.ID, time.Now())
	suite.NoError(err)

	// backdate the row past the retention cutoff
	err = suite.baseTestSuite.DB.Model(&models.WebhookEvent{}).
		Where("id = ?", oldEvent.ID).
		Update("created_at", time.Now().Add(-100*24*time.Hour)).Error
	suite.NoError(err)

	recentEvent := suite.factories.WebhookEvent.Create()
	_, err = suite.repo.Insert(recentEvent)
	suite.NoError(err)

	deleted, err := suite.repo.DeleteOlderThan(time.Now().Add(-90 * 24 * time.Hour))

	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByProviderEventID(oldEvent.Provider, oldEvent.EventID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	_, err = suite.repo.GetByProviderEventID(recentEvent.Provider, recentEvent.EventID)
	suite.NoError(err)
}

// Run the test suite
func TestWebhookEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookEventRepositoryTestSuite))
}
