package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/metrics"
	"synthex-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"
)

// WebhookService processes inbound Stripe webhook events exactly once.
// Every delivery is first recorded under its (provider, event_id) pair;
// a retried delivery finds the row already present and is acknowledged
// without reprocessing.
type WebhookService struct {
	events        repository.WebhookEventRepositoryInterface
	subscriptions repository.SubscriptionRepositoryInterface
	orgs          repository.OrganizationRepositoryInterface
	billing       *BillingService
	audit         *AuditService
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	events repository.WebhookEventRepositoryInterface,
	subscriptions repository.SubscriptionRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	billing *BillingService,
	audit *AuditService,
) *WebhookService {
	return &WebhookService{
		events:        events,
		subscriptions: subscriptions,
		orgs:          orgs,
		billing:       billing,
		audit:         audit,
	}
}

// WebhookResult reports how a delivery was handled
type WebhookResult struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// ProcessStripeEvent handles one verified Stripe event. The unique
// insert of the event row is the idempotency gate: when it reports the
// event as already known, processing is skipped entirely.
func (s *WebhookService) ProcessStripeEvent(event *stripe.Event) (*WebhookResult, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	row := &models.WebhookEvent{
		Provider:  "stripe",
		EventID:   event.ID,
		EventType: string(event.Type),
		Payload:   payload,
		Status:    models.WebhookReceived,
	}

	created, err := s.events.Insert(row)
	if err != nil {
		return nil, fmt.Errorf("failed to record webhook event: %w", err)
	}
	if !created {
		metrics.WebhookEvents.WithLabelValues("stripe", "duplicate").Inc()
		logrus.WithFields(logrus.Fields{
			"provider": "stripe",
			"event_id": event.ID,
			"type":     event.Type,
		}).Info("duplicate webhook delivery ignored")
		return &WebhookResult{Received: true, Duplicate: true}, nil
	}

	if err := s.dispatch(event); err != nil {
		// Acknowledge the delivery anyway; the failure is recorded on the
		// event row and a retry would hit the idempotency gate.
		metrics.WebhookEvents.WithLabelValues("stripe", "failed").Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"event_id": event.ID,
			"type":     event.Type,
		}).Error("webhook event handler failed")
		if markErr := s.events.MarkFailed(row.ID, truncate(err.Error(), 500)); markErr != nil {
			logrus.WithError(markErr).WithField("event_id", event.ID).Error("failed to mark webhook event failed")
		}
		return &WebhookResult{Received: true}, nil
	}

	metrics.WebhookEvents.WithLabelValues("stripe", "processed").Inc()
	if err := s.events.MarkProcessed(row.ID, time.Now()); err != nil {
		logrus.WithError(err).WithField("event_id", event.ID).Error("failed to mark webhook event processed")
	}

	return &WebhookResult{Received: true}, nil
}

// dispatch routes an event to its handler. Unknown event types are
// acknowledged without action so Stripe stops retrying them.
func (s *WebhookService) dispatch(event *stripe.Event) error {
	switch string(event.Type) {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(event)
	case "customer.subscription.created", "customer.subscription.updated":
		return s.handleSubscriptionUpserted(event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(event)
	case "invoice.payment_failed":
		return s.handlePaymentFailed(event)
	default:
		logrus.WithField("type", event.Type).Debug("ignoring unhandled webhook event type")
		return nil
	}
}

func (s *WebhookService) handleCheckoutCompleted(event *stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}
	if session.Customer == nil {
		return errors.New("checkout session has no customer")
	}

	org, err := s.orgForCustomer(session.Customer.ID)
	if err != nil {
		return err
	}

	// The subscription.created event carries the authoritative tier;
	// checkout completion is recorded for the audit trail only.
	s.audit.Record(org.ID, nil, "billing.checkout_completed", "organization", &org.ID, map[string]string{
		"checkout_session": session.ID,
	})
	return nil
}

func (s *WebhookService) handleSubscriptionUpserted(event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}
	if sub.Customer == nil {
		return errors.New("subscription has no customer")
	}

	org, err := s.orgForCustomer(sub.Customer.ID)
	if err != nil {
		return err
	}

	priceID := ""
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		priceID = sub.Items.Data[0].Price.ID
	}

	tier, ok := s.billing.TierForPrice(priceID)
	if !ok {
		return fmt.Errorf("subscription price %q maps to no known tier", priceID)
	}

	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	mirror, err := s.subscriptions.GetByStripeSubscriptionID(sub.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load subscription mirror: %w", err)
	}

	if mirror == nil {
		mirror = &models.Subscription{
			OrganizationID:       org.ID,
			StripeSubscriptionID: sub.ID,
		}
		mirror.StripePriceID = priceID
		mirror.Tier = tier
		mirror.Status = mapSubscriptionStatus(sub.Status)
		mirror.CurrentPeriodEnd = &periodEnd
		mirror.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
		if err := s.subscriptions.Create(mirror); err != nil {
			return fmt.Errorf("failed to create subscription mirror: %w", err)
		}
	} else {
		mirror.StripePriceID = priceID
		mirror.Tier = tier
		mirror.Status = mapSubscriptionStatus(sub.Status)
		mirror.CurrentPeriodEnd = &periodEnd
		mirror.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
		if err := s.subscriptions.Update(mirror); err != nil {
			return fmt.Errorf("failed to update subscription mirror: %w", err)
		}
	}

	if org.PlanTier != tier {
		if err := s.orgs.UpdatePlanTier(org.ID, tier); err != nil {
			return fmt.Errorf("failed to update plan tier: %w", err)
		}
		s.audit.Record(org.ID, nil, "billing.plan_changed", "organization", &org.ID, map[string]string{
			"tier": string(tier),
		})
	}

	return nil
}

func (s *WebhookService) handleSubscriptionDeleted(event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	mirror, err := s.subscriptions.GetByStripeSubscriptionID(sub.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing to cancel locally; acknowledge so Stripe stops retrying.
			return nil
		}
		return fmt.Errorf("failed to load subscription mirror: %w", err)
	}

	mirror.Status = models.SubscriptionCanceled
	if err := s.subscriptions.Update(mirror); err != nil {
		return fmt.Errorf("failed to cancel subscription mirror: %w", err)
	}

	if err := s.orgs.UpdatePlanTier(mirror.OrganizationID, models.PlanFree); err != nil {
		return fmt.Errorf("failed to downgrade organization: %w", err)
	}

	s.audit.Record(mirror.OrganizationID, nil, "billing.subscription_canceled", "organization", &mirror.OrganizationID, nil)
	return nil
}

func (s *WebhookService) handlePaymentFailed(event *stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to parse invoice: %w", err)
	}
	if invoice.Subscription == nil {
		return nil
	}

	mirror, err := s.subscriptions.GetByStripeSubscriptionID(invoice.Subscription.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load subscription mirror: %w", err)
	}

	mirror.Status = models.SubscriptionPastDue
	if err := s.subscriptions.Update(mirror); err != nil {
		return fmt.Errorf("failed to mark subscription past due: %w", err)
	}

	s.audit.Record(mirror.OrganizationID, nil, "billing.payment_failed", "organization", &mirror.OrganizationID, map[string]string{
		"invoice": invoice.ID,
	})
	return nil
}

func (s *WebhookService) orgForCustomer(customerID string) (*models.Organization, error) {
	org, err := s.orgs.GetByStripeCustomerID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization for customer %s: %w", customerID, err)
	}
	return org, nil
}

func mapSubscriptionStatus(status stripe.SubscriptionStatus) models.SubscriptionStatus {
	switch status {
	case stripe.SubscriptionStatusTrialing:
		return models.SubscriptionTrialing
	case stripe.SubscriptionStatusActive:
		return models.SubscriptionActive
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return models.SubscriptionPastDue
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return models.SubscriptionCanceled
	default:
		return models.SubscriptionActive
	}
}
