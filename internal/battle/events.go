package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the configured event bus.
const (
	EventStarted        = "battle.started"
	EventActionResolved = "battle.action_resolved"
	EventEscaped        = "battle.escaped"
	EventFinished       = "battle.finished"
)

// publish sends an event when a bus is configured. A failing subscriber
// never stops the fight.
func (bt *Battle) publish(ctx context.Context, eventType string, source, target core.Entity, data map[string]interface{}) {
	if bt.bus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := bt.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish battle event",
			"event", eventType,
			"round", bt.round,
			"error", err,
		)
	}
}
