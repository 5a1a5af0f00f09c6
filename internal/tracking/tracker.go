// Package tracking records page and project views without keeping raw
// client addresses.
package tracking

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ahzammaqsood/portfolio/internal/store"
)

// Sink persists tracked events. *store.Store implements it.
type Sink interface {
	RecordVisit(ctx context.Context, v store.Visit) error
	RecordProjectView(ctx context.Context, projectID, hashedIP string, at time.Time) error
}

type event struct {
	visit     *store.Visit
	projectID string
	hashedIP  string
	at        time.Time
}

// Tracker hashes client addresses and writes events in the background.
// Events are dropped rather than blocking a request when the queue is
// full.
type Tracker struct {
	sink  Sink
	log   *zap.Logger
	salt  string
	queue chan event
	now   func() time.Time
}

// New returns a tracker with a fresh random salt. Hashes are stable for
// the life of the process only.
func New(sink Sink, log *zap.Logger, queueSize int) (*Tracker, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Tracker{
		sink:  sink,
		log:   log,
		salt:  salt,
		queue: make(chan event, queueSize),
		now:   time.Now,
	}, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns a truncated salted hash of ip.
func (t *Tracker) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + t.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Visit queues a page view.
func (t *Tracker) Visit(ip, userAgent, path string) {
	t.enqueue(event{visit: &store.Visit{
		HashedIP:  t.HashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: t.now(),
	}})
}

// ProjectView queues an opening of a project detail view.
func (t *Tracker) ProjectView(ip, projectID string) {
	t.enqueue(event{projectID: projectID, hashedIP: t.HashIP(ip), at: t.now()})
}

func (t *Tracker) enqueue(e event) {
	select {
	case t.queue <- e:
	default:
		t.log.Warn("tracking queue full, dropping event")
	}
}

// Run writes queued events until ctx is done, then drains what is left.
func (t *Tracker) Run(ctx context.Context) error {
	for {
		select {
		case e := <-t.queue:
			t.write(ctx, e)
		case <-ctx.Done():
			t.drain()
			return nil
		}
	}
}

func (t *Tracker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case e := <-t.queue:
			t.write(ctx, e)
		default:
			return
		}
	}
}

func (t *Tracker) write(ctx context.Context, e event) {
	var err error
	if e.visit != nil {
		err = t.sink.RecordVisit(ctx, *e.visit)
	} else {
		err = t.sink.RecordProjectView(ctx, e.projectID, e.hashedIP, e.at)
	}
	if err != nil {
		t.log.Error("recording tracking event", zap.Error(err))
	}
}
