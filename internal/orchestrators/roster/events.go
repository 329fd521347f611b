package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventCharacterAdded   = "roster.character.added"
	EventCharacterUpdated = "roster.character.updated"
	EventIntentRejected   = "roster.intent.rejected"
	EventRosterSaved      = "roster.saved"
	EventRosterSaveFailed = "roster.save_failed"
)

// AllEvents lists every event type the orchestrator publishes
var AllEvents = []string{
	EventCharacterAdded,
	EventCharacterUpdated,
	EventIntentRejected,
	EventRosterSaved,
	EventRosterSaveFailed,
}

// publish never fails the caller; a bus error is only logged
func (o *Orchestrator) publish(ctx context.Context, eventType string, source core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish roster event",
			"event", eventType,
			"error", err.Error())
	}
}

// Notifier logs roster events. The server subscribes it so rejections and saves are
// visible to operators.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a notifier that logs through logger, or the default logger if nil
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

// Handle logs a single event
func (n *Notifier) Handle(ctx context.Context, event events.Event) error {
	attrs := []any{"event", event.Type()}
	if src := event.Source(); src != nil {
		attrs = append(attrs, "entity_type", src.GetType(), "entity_id", src.GetID())
	}

	level := slog.LevelInfo
	switch event.Type() {
	case EventIntentRejected, EventRosterSaveFailed:
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, "roster event", attrs...)
	return nil
}

// Subscribe registers the notifier for every roster event and returns the subscription IDs
func (n *Notifier) Subscribe(bus events.EventBus) []string {
	ids := make([]string, 0, len(AllEvents))
	for _, eventType := range AllEvents {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, n.Handle))
	}
	return ids
}
