// Package live implements the real-time side of the dashboard: a Hub that fans
// messages out to every browser currently watching a stream, delivered over
// Server-Sent Events (SSE). SSE is the simplest push mechanism the web has —
// a plain HTTP response that stays open while the server keeps appending
// "data: ..." lines — which makes it a better teaching fit than WebSockets
// when the data only ever flows server → client.
package live

import "sync" // sync provides synchronization primitives like mutexes for safe concurrent access

// Subscriber represents one open SSE connection.
// Each browser tab sitting on the dashboard page has one Subscriber on the server.
type Subscriber struct {
	Topic string      // Which stream this subscriber is watching — used to route messages to the right audience
	Send  chan []byte // Buffered channel of outgoing messages; the Hub writes here, the SSE handler drains it onto the wire
}

// Message is a unit of data to fan out to every subscriber of a topic.
// Carrying the Topic with the payload lets the Hub know which group receives it.
type Message struct {
	Topic string // The stream this message belongs to
	Data  []byte // The raw bytes to send (JSON-encoded chart payloads in our case)
}

// Hub tracks all active subscribers, grouped by topic.
// It runs in its own goroutine and processes subscription, unsubscription, and
// broadcast events through channels — this keeps all map mutation on a single
// goroutine, which avoids data races (concurrent map writes cause panics in Go).
type Hub struct {
	// subscribers is a nested map: topic -> set of Subscriber pointers -> bool (true = connected).
	// Using a map[*Subscriber]bool as a "set" is a common Go idiom because Go has no built-in set type.
	subscribers map[string]map[*Subscriber]bool

	broadcast   chan *Message    // Incoming messages to be delivered to every subscriber of a topic
	subscribe   chan *Subscriber // Signals that a new SSE connection opened and should be tracked
	unsubscribe chan *Subscriber // Signals that a connection closed and should be removed

	// mu protects the subscribers map: broadcasts take a read lock (RLock) while the
	// event loop takes a write lock (Lock) when mutating. A RWMutex allows multiple
	// concurrent readers OR one exclusive writer, which matches this access pattern.
	mu sync.RWMutex
}

// NewHub creates and initializes a Hub with empty channels and maps.
// The broadcast channel has a buffer of 256 so publishers don't block immediately
// if the Hub goroutine is briefly busy. subscribe and unsubscribe are unbuffered
// because those operations need to complete synchronously.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Subscriber]bool),
		broadcast:   make(chan *Message, 256),
		subscribe:   make(chan *Subscriber),
		unsubscribe: make(chan *Subscriber),
	}
}

// Run is the Hub's main event loop. It must be called in a goroutine ("go hub.Run()").
// It blocks forever, processing one event at a time via a select statement.
// select is like a switch but for channels — it waits until one of the cases has data ready.
func (h *Hub) Run() {
	for {
		select {

		// A new connection opened — add it to the subscribers map under its topic
		case sub := <-h.subscribe:
			h.mu.Lock()
			// If this is the first subscriber for the topic, initialize the inner map
			if h.subscribers[sub.Topic] == nil {
				h.subscribers[sub.Topic] = make(map[*Subscriber]bool)
			}
			h.subscribers[sub.Topic][sub] = true
			h.mu.Unlock()

		// A connection closed — remove it from the map and close its Send channel
		case sub := <-h.unsubscribe:
			h.drop(sub)

		// A message arrived to deliver to every subscriber of a topic
		case msg := <-h.broadcast:
			// RLock (read lock) is enough here because we only read the map,
			// never modify it. Multiple goroutines may hold an RLock at once.
			h.mu.RLock()
			subs := h.subscribers[msg.Topic]
			h.mu.RUnlock()

			for sub := range subs {
				select {
				// Try to hand the message to the subscriber's outgoing channel
				case sub.Send <- msg.Data:
				// If the channel buffer is full, the client is too slow — drop it.
				// The default case makes this non-blocking: a stalled connection
				// must never hold up the broadcast loop for everyone else.
				// drop is called directly because we're already on the Hub
				// goroutine — sending to our own unsubscribe channel here
				// would block forever (nobody else reads it).
				default:
					h.drop(sub)
				}
			}
		}
	}
}

// drop removes a subscriber from the map and closes its Send channel.
// Closing the channel is the signal the SSE handler loop waits on to stop.
// Safe to call twice for the same subscriber: the existence check means the
// second call finds nothing and does nothing (so the channel is closed once).
func (h *Hub) drop(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.subscribers[sub.Topic]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub) // Remove this subscriber from the topic's set
			close(sub.Send)
			// Clean up the topic's map entry if nobody is left — avoids memory leaks
			if len(subs) == 0 {
				delete(h.subscribers, sub.Topic)
			}
		}
	}
}

// Broadcast delivers data to every subscriber currently watching the given topic.
// This is the public API the background sampler calls with fresh payloads.
func (h *Hub) Broadcast(topic string, data []byte) {
	h.broadcast <- &Message{Topic: topic, Data: data}
}

// Subscribe registers a subscriber so it starts receiving broadcasts for its topic.
// Called when an SSE connection is opened.
func (h *Hub) Subscribe(sub *Subscriber) {
	h.subscribe <- sub
}

// Unsubscribe removes a subscriber when its connection closes.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.unsubscribe <- sub
}
