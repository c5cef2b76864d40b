// Package bus is a typed, in-process publish/subscribe hub for UI events.
package bus

import (
	"sync"
	"sync/atomic"
)

// Kind names an event. Each kind carries exactly one payload type, bound by
// a Topic.
type Kind string

const (
	KindNotification Kind = "notification"
)

// NotificationType is the color of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationFailure NotificationType = "error"
)

// Notification is the payload of KindNotification.
type Notification struct {
	Color NotificationType `json:"color"`
	Text  string           `json:"text"`
}

// Topic binds a Kind to its payload type.
type Topic[T any] struct {
	kind Kind
}

// NewTopic declares a topic for kind.
func NewTopic[T any](kind Kind) Topic[T] {
	return Topic[T]{kind: kind}
}

// Kind returns the event kind of the topic.
func (t Topic[T]) Kind() Kind {
	return t.kind
}

// Notifications is the topic used for user-visible notifications.
var Notifications = NewTopic[Notification](KindNotification)

type subscription[F any] struct {
	id uint64
	fn F
}

// Bus dispatches events synchronously, in subscription order, with kind
// handlers running before wildcard handlers. The zero value is ready to use.
// A nil *Bus drops every event, and subscribing to it is a no-op.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]subscription[func(any)]
	wildcard []subscription[func(Kind, any)]
	seq      atomic.Uint64
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Kind][]subscription[func(any)])}
}

// Subscribe registers fn for topic and returns a function removing it.
func Subscribe[T any](b *Bus, topic Topic[T], fn func(T)) func() {
	if b == nil {
		return func() {}
	}
	id := b.seq.Add(1)
	wrapped := func(payload any) {
		if v, ok := payload.(T); ok {
			fn(v)
		}
	}

	b.mu.Lock()
	if b.handlers == nil {
		b.handlers = make(map[Kind][]subscription[func(any)])
	}
	b.handlers[topic.kind] = append(b.handlers[topic.kind], subscription[func(any)]{id: id, fn: wrapped})
	b.mu.Unlock()

	return func() { b.remove(topic.kind, id) }
}

// Publish delivers payload to the subscribers of topic, then to the
// wildcard subscribers.
func Publish[T any](b *Bus, topic Topic[T], payload T) {
	if b == nil {
		return
	}

	b.mu.RLock()
	handlers := append([]subscription[func(any)](nil), b.handlers[topic.kind]...)
	wildcard := append([]subscription[func(Kind, any)](nil), b.wildcard...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h.fn(payload)
	}
	for _, h := range wildcard {
		h.fn(topic.kind, payload)
	}
}

// SubscribeAll registers fn for every kind and returns a function removing it.
func (b *Bus) SubscribeAll(fn func(Kind, any)) func() {
	if b == nil {
		return func() {}
	}
	id := b.seq.Add(1)

	b.mu.Lock()
	b.wildcard = append(b.wildcard, subscription[func(Kind, any)]{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, h := range b.wildcard {
			if h.id == id {
				b.wildcard = append(b.wildcard[:i:i], b.wildcard[i+1:]...)
				return
			}
		}
	}
}

// Clear removes every subscriber of kind.
func (b *Bus) Clear(kind Kind) {
	if b == nil {
		return
	}
	b.mu.Lock()
	delete(b.handlers, kind)
	b.mu.Unlock()
}

// Reset removes every subscriber, wildcard ones included.
func (b *Bus) Reset() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.handlers = make(map[Kind][]subscription[func(any)])
	b.wildcard = nil
	b.mu.Unlock()
}

// Subscribers returns the number of handlers registered for kind.
func (b *Bus) Subscribers(kind Kind) int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}

func (b *Bus) remove(kind Kind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.handlers[kind]
	for i, h := range list {
		if h.id == id {
			b.handlers[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}
