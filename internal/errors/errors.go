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
	Context string // Additional context like "with this slug"
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PaymentRequiredError is returned when an operation needs a paid plan
type PaymentRequiredError struct {
	Message string
}

func (e *PaymentRequiredError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrProfileNotFound       = &NotFoundError{Entity: "profile"}
	ErrQuestionnaireNotFound = &NotFoundError{Entity: "questionnaire"}
	ErrQuestionNotFound      = &NotFoundError{Entity: "question"}
	ErrAssessmentNotFound    = &NotFoundError{Entity: "assessment"}
	ErrSubscriptionNotFound  = &NotFoundError{Entity: "subscription"}
	ErrPlanNotFound          = &NotFoundError{Entity: "plan"}
	ErrActionItemNotFound    = &NotFoundError{Entity: "action item"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this slug or CNPJ"}
	ErrProfileExists       = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrQuestionnaireExists = &AlreadyExistsError{Entity: "questionnaire", Context: "with this name in the organization"}
	ErrWebhookEventExists  = &AlreadyExistsError{Entity: "webhook event", Context: "with this id"}
)

// Business Logic Errors
var (
	ErrInvalidStatusTransition = errors.New("invalid assessment status transition")
	ErrAssessmentNotEditable   = errors.New("only draft assessments can be changed")
	ErrAssessmentNotOpen       = errors.New("assessment is not accepting responses")
	ErrQuestionnaireInUse      = errors.New("questionnaire is used by an assessment")
	ErrIncompleteResponse      = errors.New("every question must be answered exactly once")
	ErrAnswerOutOfScale        = errors.New("answer value is outside the questionnaire scale")
	ErrUnknownDepartment       = errors.New("department is not part of this assessment")
	ErrTermsNotAccepted        = errors.New("terms of service must be accepted")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrRateLimited             = errors.New("rate limit exceeded")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication and authorization errors
var (
	ErrMissingToken          = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken          = &AuthenticationError{Message: "invalid token"}
	ErrProfileInactive       = &AuthorizationError{Message: "profile is inactive"}
	ErrForbidden             = &AuthorizationError{Message: "insufficient permissions"}
	ErrCrossTenantAccess     = &AuthorizationError{Message: "resource belongs to another organization"}
	ErrNoOrganization        = &AuthorizationError{Message: "profile is not assigned to an organization"}
	ErrSubscriptionRequired  = &PaymentRequiredError{Message: "an active subscription is required"}
	ErrPlanLimitReached      = &PaymentRequiredError{Message: "plan limit of active assessments reached"}
	ErrStripeNotConfigured   = &ConfigurationError{Message: "stripe is not configured"}
	ErrWebhookSecretNotSet   = &ConfigurationError{Message: "STRIPE_WEBHOOK_SECRET is not set"}
	ErrCheckoutPriceNotFound = &ConfigurationError{Message: "plan has no stripe price configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsPaymentRequired checks if an error is a PaymentRequiredError
func IsPaymentRequired(err error) bool {
	var payErr *PaymentRequiredError
	return errors.As(err, &payErr)
}

// IsBusinessRule reports whether err is one of the business rule sentinels
// that map to a 4xx response.
func IsBusinessRule(err error) bool {
	for _, target := range []error{
		ErrInvalidStatusTransition,
		ErrAssessmentNotEditable,
		ErrAssessmentNotOpen,
		ErrQuestionnaireInUse,
		ErrIncompleteResponse,
		ErrAnswerOutOfScale,
		ErrUnknownDepartment,
		ErrTermsNotAccepted,
		ErrInvalidPaginationParams,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
