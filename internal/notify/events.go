package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"psicomapa-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// Event types published to the automation workflow
const (
	EventOrganizationCreated   = "organization.created"
	EventAssessmentActivated   = "assessment.activated"
	EventAssessmentClosed      = "assessment.closed"
	EventAssessmentClosingSoon = "assessment.closing_soon"
	EventSubscriptionActivated = "subscription.activated"
	EventSubscriptionCanceled  = "subscription.canceled"
	EventPaymentFailed         = "payment.failed"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body
const SignatureHeader = "X-PsicoMapa-Signature"

// Event is the payload delivered to n8n
type Event struct {
	Type           string                 `json:"event"`
	OccurredAt     time.Time              `json:"occurred_at"`
	OrganizationID string                 `json:"organization_id,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
}

// NewEvent builds an event stamped with the current time
func NewEvent(eventType, organizationID string, data map[string]interface{}) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), OrganizationID: organizationID, Data: data}
}

//go:generate mockgen -source=events.go -destination=../mocks/publisher_mocks.go -package=mocks

// Publisher sends domain events to marketing automation. Publish never blocks
// on delivery and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close(ctx context.Context) error
}

// Outcome labels reported to the delivery observer
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

// DispatcherConfig configures the n8n dispatcher
type DispatcherConfig struct {
	URL             string
	Secret          string
	QueueSize       int
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	// Observe is called once per event with its final outcome
	Observe func(eventType, outcome string)
}

// NewPublisher returns the n8n dispatcher, or a no-op publisher when no URL is configured
func NewPublisher(cfg DispatcherConfig) Publisher {
	if cfg.URL == "" {
		return NoopPublisher{}
	}
	return NewDispatcher(cfg)
}

// statusError is a non-2xx answer from the webhook
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.code, e.body)
}

func isClientError(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code >= 400 && se.code < 500
}

// Dispatcher delivers events from a bounded queue on a background worker
type Dispatcher struct {
	cfg     DispatcherConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	queue   chan Event
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates the dispatcher and starts its worker
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 4
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.Observe == nil {
		cfg.Observe = func(string, string) {}
	}

	d := &Dispatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "n8n",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// a rejected payload says nothing about the endpoint's health
			IsSuccessful: func(err error) bool {
				return err == nil || isClientError(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.New().WithFields(map[string]interface{}{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Circuit breaker state changed")
			},
		}),
		queue: make(chan Event, cfg.QueueSize),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Publish enqueues the event; a full queue or closed dispatcher drops it
func (d *Dispatcher) Publish(ctx context.Context, event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	log := logger.WithContext(ctx).WithField("event", event.Type)
	if d.closed {
		log.Warn("Event dropped, dispatcher closed")
		d.cfg.Observe(event.Type, OutcomeDropped)
		return
	}
	select {
	case d.queue <- event:
	default:
		log.Warn("Event dropped, dispatch queue full")
		d.cfg.Observe(event.Type, OutcomeDropped)
	}
}

// Close stops accepting events and waits for the queue to drain
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain event queue: %w", ctx.Err())
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for event := range d.queue {
		if err := d.deliver(event); err != nil {
			logger.New().WithError(err).WithField("event", event.Type).Error("Failed to deliver event")
			d.cfg.Observe(event.Type, OutcomeFailed)
			continue
		}
		d.cfg.Observe(event.Type, OutcomeDelivered)
	}
}

func (d *Dispatcher) deliver(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.InitialInterval
	b.MaxElapsedTime = 2 * time.Minute

	operation := func() error {
		_, err := d.breaker.Execute(func() (interface{}, error) {
			return nil, d.post(body)
		})
		if err == nil {
			return nil
		}
		if isClientError(err) || errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(operation, backoff.WithMaxRetries(b, d.cfg.MaxRetries))
}

func (d *Dispatcher) post(body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "PsicoMapa-Webhook/1.0")
	if d.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, "sha256="+Sign(d.cfg.Secret, body))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: string(respBody)}
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of body under secret
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// NoopPublisher logs events instead of sending them
type NoopPublisher struct{}

// Publish logs the event at debug level
func (NoopPublisher) Publish(ctx context.Context, event Event) {
	logger.WithContext(ctx).WithField("event", event.Type).Debug("n8n not configured, event not sent")
}

// Close is a no-op
func (NoopPublisher) Close(context.Context) error { return nil }
