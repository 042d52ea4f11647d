package chat

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/heartmarshall/tcpchat/internal/service/chat"

type metrics struct {
	messagesSent        metric.Int64Counter
	roomsCreated        metric.Int64Counter
	activeSubscriptions metric.Int64UpDownCounter
	droppedEvents       metric.Int64Counter
	subscriptionLag     metric.Int64Counter
}

// newMetrics registers instruments on the global meter provider. Until a
// provider is installed they are no-ops.
func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	messagesSent, _ := meter.Int64Counter("chat.messages.sent",
		metric.WithDescription("Messages persisted and broadcast"))
	roomsCreated, _ := meter.Int64Counter("chat.rooms.created",
		metric.WithDescription("Rooms created"))
	activeSubscriptions, _ := meter.Int64UpDownCounter("chat.subscriptions.active",
		metric.WithDescription("Live streaming subscriptions"))
	droppedEvents, _ := meter.Int64Counter("chat.events.dropped",
		metric.WithDescription("Matching events a full subscriber buffer could not take"))
	subscriptionLag, _ := meter.Int64Counter("chat.subscriptions.lagged",
		metric.WithDescription("Broadcast events of any room or user a lagging subscription skipped"))

	return &metrics{
		messagesSent:        messagesSent,
		roomsCreated:        roomsCreated,
		activeSubscriptions: activeSubscriptions,
		droppedEvents:       droppedEvents,
		subscriptionLag:     subscriptionLag,
	}
}
