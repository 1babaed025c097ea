package testutil

import (
	"context"
	"sync"
)

// PublishedEvent is one event captured by the mock publisher.
type PublishedEvent struct {
	RoutingKey string
	EventData  interface{}
}

// MockPublisher implements messaging.PublisherInterface in memory.
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{RoutingKey: routingKey, EventData: eventData})
	return nil
}

func (m *MockPublisher) Close() error { return nil }

// Events returns a copy of everything published so far.
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

// EventCountByKey returns how many events carried the routing key.
func (m *MockPublisher) EventCountByKey(routingKey string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, e := range m.events {
		if e.RoutingKey == routingKey {
			count++
		}
	}
	return count
}
