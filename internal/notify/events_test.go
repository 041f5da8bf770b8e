package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomes struct {
	mu   sync.Mutex
	seen map[string][]string
}

func newOutcomes() *outcomes {
	return &outcomes{seen: map[string][]string{}}
}

func (o *outcomes) observe(eventType, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen[outcome] = append(o.seen[outcome], eventType)
}

func (o *outcomes) get(outcome string) []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.seen[outcome]...)
}

func TestNewPublisherWithoutURLIsNoop(t *testing.T) {
	p := NewPublisher(DispatcherConfig{})
	_, ok := p.(NoopPublisher)
	assert.True(t, ok)
	p.Publish(context.Background(), NewEvent(EventAssessmentClosed, "org", nil))
	assert.NoError(t, p.Close(context.Background()))
}

func TestDispatcherDeliversSignedEvent(t *testing.T) {
	var gotBody []byte
	var gotSig string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	obs := newOutcomes()
	d := NewDispatcher(DispatcherConfig{URL: server.URL, Secret: "s3cret", Observe: obs.observe})
	d.Publish(context.Background(), NewEvent(EventAssessmentActivated, "org-1", map[string]interface{}{"title": "Clima"}))
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, "sha256="+Sign("s3cret", gotBody), gotSig)
	var event Event
	require.NoError(t, json.Unmarshal(gotBody, &event))
	assert.Equal(t, EventAssessmentActivated, event.Type)
	assert.Equal(t, "org-1", event.OrganizationID)
	assert.Equal(t, "Clima", event.Data["title"])
	assert.Equal(t, []string{EventAssessmentActivated}, obs.get(OutcomeDelivered))
}

func TestDispatcherRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	obs := newOutcomes()
	d := NewDispatcher(DispatcherConfig{URL: server.URL, InitialInterval: time.Millisecond, Observe: obs.observe})
	d.Publish(context.Background(), NewEvent(EventPaymentFailed, "org", nil))
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, obs.get(OutcomeDelivered), 1)
}

func TestDispatcherDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	obs := newOutcomes()
	d := NewDispatcher(DispatcherConfig{URL: server.URL, InitialInterval: time.Millisecond, Observe: obs.observe})
	d.Publish(context.Background(), NewEvent(EventSubscriptionCanceled, "org", nil))
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{EventSubscriptionCanceled}, obs.get(OutcomeFailed))
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	received := make(chan struct{}, 4)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	obs := newOutcomes()
	d := NewDispatcher(DispatcherConfig{URL: server.URL, QueueSize: 1, Observe: obs.observe})
	d.Publish(context.Background(), NewEvent("first", "", nil))
	<-received // worker is now busy with the first event

	d.Publish(context.Background(), NewEvent("second", "", nil))
	d.Publish(context.Background(), NewEvent("third", "", nil))
	assert.Equal(t, []string{"third"}, obs.get(OutcomeDropped))

	close(release)
	require.NoError(t, d.Close(context.Background()))
	assert.ElementsMatch(t, []string{"first", "second"}, obs.get(OutcomeDelivered))

	d.Publish(context.Background(), NewEvent("late", "", nil))
	assert.Contains(t, obs.get(OutcomeDropped), "late")
}

func TestDispatcherCloseHonoursContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	d := NewDispatcher(DispatcherConfig{URL: server.URL})
	d.Publish(context.Background(), NewEvent("slow", "", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, d.Close(ctx))
}
