package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in workspace"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PlanLimitError represents an operation rejected because the
// organization's plan does not allow it
type PlanLimitError struct {
	Resource string
	Limit    int
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("plan limit reached: %s (limit %d)", e.Resource, e.Limit)
}

// Is enables errors.Is() comparison for PlanLimitError
func (e *PlanLimitError) Is(target error) bool {
	_, ok := target.(*PlanLimitError)
	return ok
}

// InvalidTransitionError represents an illegal state transition, e.g.
// scheduling a campaign that is not a draft
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.From, e.To)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrWorkspaceNotFound    = &NotFoundError{Entity: "workspace"}
	ErrContactNotFound      = &NotFoundError{Entity: "contact"}
	ErrCampaignNotFound     = &NotFoundError{Entity: "campaign"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "subscription"}
	ErrEmailAccountNotFound = &NotFoundError{Entity: "email account"}
	ErrWebhookEventNotFound = &NotFoundError{Entity: "webhook event"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user in the organization"}
	ErrWorkspaceExists    = &AlreadyExistsError{Entity: "workspace", Context: "with this slug in the organization"}
	ErrContactExists      = &AlreadyExistsError{Entity: "contact", Context: "with this email in the workspace"}
	ErrEmailAccountExists = &AlreadyExistsError{Entity: "email account", Context: "with this address in the workspace"}
	ErrWebhookEventExists = &AlreadyExistsError{Entity: "webhook event", Context: "with this provider event id"}
)

// Authentication and flow errors
var (
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidOAuthState  = &AuthenticationError{Message: "invalid, expired, or already used oauth state"}
	ErrNotMember          = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrInsufficientRole   = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrLastOwner          = &AuthorizationError{Message: "organization must keep at least one owner"}
	ErrCreditsExhausted   = &PlanLimitError{Resource: "ai credits"}
	ErrCampaignNotClaimed = errors.New("campaign was claimed by another dispatcher")
)

// IsNotFound reports whether err is any NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists reports whether err is any AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsValidation reports whether err is any ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPlanLimit reports whether err is any PlanLimitError
func IsPlanLimit(err error) bool {
	var pl *PlanLimitError
	return errors.As(err, &pl)
}

// IsInvalidTransition reports whether err is any InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}
