package contact

import (
	"context"
	"log"
	"time"
)

// DefaultDelay is how long a submission takes to "send" when no delay is
// configured.
const DefaultDelay = time.Second

// Sink stores accepted messages.
type Sink interface {
	Create(ctx context.Context, m *Message) error
}

// forwardMarker is implemented by sinks that track webhook delivery.
type forwardMarker interface {
	MarkForwarded(ctx context.Context, id string) error
}

// Submitter accepts contact form submissions: it validates them, waits out
// the send delay, stores them and forwards them to the webhook if one is
// configured.
type Submitter struct {
	sink      Sink
	delay     time.Duration
	forwarder *Forwarder
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithDelay sets the simulated send delay. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Submitter) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithForwarder forwards every accepted message through f.
func WithForwarder(f *Forwarder) Option {
	return func(s *Submitter) { s.forwarder = f }
}

// NewSubmitter creates a Submitter storing messages in sink.
func NewSubmitter(sink Sink, opts ...Option) *Submitter {
	s := &Submitter{sink: sink, delay: DefaultDelay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit accepts sub on behalf of an anonymous sender.
func (s *Submitter) Submit(ctx context.Context, sub Submission) (*Message, error) {
	return s.SubmitFrom(ctx, sub, "")
}

// SubmitFrom accepts sub sent from remoteAddr. Invalid submissions return a
// *ValidationError without touching the sink. The returned message is the
// stored record.
func (s *Submitter) SubmitFrom(ctx context.Context, sub Submission, remoteAddr string) (*Message, error) {
	sub = sub.Normalize()
	if errs := Validate(sub); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	m := &Message{
		Submission: sub,
		RemoteAddr: remoteAddr,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.sink.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.forwarder != nil {
		if err := s.forwarder.Forward(ctx, m); err != nil {
			log.Printf("contact: forwarding message %s: %v", m.ID, err)
		} else {
			m.Forwarded = true
			if fm, ok := s.sink.(forwardMarker); ok {
				if err := fm.MarkForwarded(ctx, m.ID); err != nil {
					log.Printf("contact: marking message %s forwarded: %v", m.ID, err)
				}
			}
		}
	}

	return m, nil
}
