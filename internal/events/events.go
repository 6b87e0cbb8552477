// Package events publishes recruitment state changes to the notification pipeline.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Type names a recruitment state change.
type Type string

// Event types.
const (
	TypeTeamCreated          Type = "team.created"
	TypeRecruitmentUpdated   Type = "team.recruitment_updated"
	TypeRequestCreated       Type = "request.created"
	TypeRequestResolved      Type = "request.resolved"
	TypeApplicationSubmitted Type = "application.submitted"
	TypeApplicationDecided   Type = "application.decided"
)

// Event is a committed state change. SubjectID is the ID of the request or
// application the event is about; it equals TeamID for team events.
type Event struct {
	ID         string            `json:"id"`
	Type       Type              `json:"type"`
	TeamID     string            `json:"team_id"`
	SubjectID  string            `json:"subject_id"`
	ActorID    string            `json:"actor_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher delivers events to a downstream consumer.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// FailureCounter is notified when a publish fails.
type FailureCounter interface {
	IncEventPublishFailure()
}

// Emitter stamps and publishes events after a transaction commits. Publishing
// never fails the caller; errors are logged and counted.
type Emitter struct {
	publisher Publisher
	failures  FailureCounter
	logger    *zap.SugaredLogger
}

// NewEmitter creates an emitter. failures may be nil.
func NewEmitter(publisher Publisher, failures FailureCounter, logger *zap.SugaredLogger) *Emitter {
	return &Emitter{publisher: publisher, failures: failures, logger: logger}
}

// Emit publishes event, filling in ID and OccurredAt when unset.
func (e *Emitter) Emit(ctx context.Context, event Event) {
	if e == nil || e.publisher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	// The operation already committed; a cancelled request must not drop the event.
	if err := e.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		e.logger.Warnw("failed to publish event",
			"event_type", event.Type,
			"team_id", event.TeamID,
			"subject_id", event.SubjectID,
			"error", err,
		)
		if e.failures != nil {
			e.failures.IncEventPublishFailure()
		}
	}
}

// LogPublisher writes events to the structured log. Used when Redis is not configured.
type LogPublisher struct {
	logger *zap.SugaredLogger
}

// NewLogPublisher creates a publisher backed by logger.
func NewLogPublisher(logger *zap.SugaredLogger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event at info level.
func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Infow("recruitment event",
		"event_id", event.ID,
		"event_type", event.Type,
		"team_id", event.TeamID,
		"subject_id", event.SubjectID,
		"actor_id", event.ActorID,
		"attributes", event.Attributes,
	)
	return nil
}

// MemoryPublisher records events in memory.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

// NewMemoryPublisher creates an empty in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// FailWith makes every subsequent Publish return err.
func (p *MemoryPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Publish records the event.
func (p *MemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of the recorded events.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// OfType returns the recorded events with the given type.
func (p *MemoryPublisher) OfType(t Type) []Event {
	var out []Event
	for _, e := range p.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
