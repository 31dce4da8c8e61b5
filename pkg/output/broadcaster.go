package output

import (
	"fmt"
	"sync"
)

// Broadcaster fans a stream of values out to any number of subscribers
// without blocking the publisher. A slow or absent subscriber never stalls
// Publish; its channel drops the oldest buffered value instead.
type Broadcaster[T any] struct {
	messageReceiver chan T
	mu              sync.Mutex
	subscribers     map[chan T]struct{}
	stopped         bool
}

// NewBroadcaster starts a Broadcaster's dispatch goroutine and returns it.
func NewBroadcaster[T any]() *Broadcaster[T] {
	b := &Broadcaster[T]{
		messageReceiver: make(chan T, 1),
		subscribers:     make(map[chan T]struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster[T]) run() {
	logger.Println("broadcaster: starting")
	for msg := range b.messageReceiver {
		b.mu.Lock()
		subs := make([]chan T, 0, len(b.subscribers))
		for s := range b.subscribers {
			subs = append(subs, s)
		}
		b.mu.Unlock()

		for _, s := range subs {
			select {
			case s <- msg:
			default:
				select {
				case <-s:
				default:
				}
				s <- msg
			}
		}
	}

	b.mu.Lock()
	for s := range b.subscribers {
		close(s)
	}
	b.stopped = true
	b.mu.Unlock()
	logger.Println("broadcaster: stopped")
}

// Stop closes the Broadcaster, closing every subscriber channel. Publish
// after Stop panics, matching a closed-channel send.
func (b *Broadcaster[T]) Stop() {
	close(b.messageReceiver)
}

// Subscribe registers a new subscriber, or fails if the Broadcaster has
// already been stopped.
func (b *Broadcaster[T]) Subscribe() (chan T, error) {
	ch := make(chan T, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil, fmt.Errorf("output: broadcaster is stopped")
	}
	b.subscribers[ch] = struct{}{}
	return ch, nil
}

// Unsubscribe removes and closes a subscriber's channel. It is a no-op if
// the Broadcaster has already stopped (its channels are already closed).
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	delete(b.subscribers, ch)
	stopped := b.stopped
	b.mu.Unlock()
	if !stopped {
		close(ch)
	}
}

// Publish delivers msg to every current subscriber, never blocking.
func (b *Broadcaster[T]) Publish(msg T) {
	select {
	case b.messageReceiver <- msg:
	default:
		select {
		case <-b.messageReceiver:
		default:
		}
		b.messageReceiver <- msg
	}
}
