// Package output buffers the byte stream produced by a running pipeline so
// it can be replayed to any number of readers, including ones that attach
// after the pipeline has already produced output. It generalizes a
// single-process output buffer into one keyed by pipe (stdout/stderr),
// suitable for streaming over the remote control plane.
package output

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

var logger = log.New(io.Discard, "output: ", log.LstdFlags)

type node struct {
	data []byte
	next atomic.Pointer[node]
}

// Storage is a lock-free, append-only singly linked list of byte chunks.
// Append is safe for concurrent use with Bytes/ForEach/Subscribe; readers
// see a best-effort snapshot, not a linearizable one.
type Storage struct {
	head *node
	tail *node

	broadcaster *Broadcaster[struct{}]
}

// NewStorage returns an empty Storage.
func NewStorage() *Storage {
	sentinel := &node{}
	return &Storage{
		head:        sentinel,
		tail:        sentinel,
		broadcaster: NewBroadcaster[struct{}](),
	}
}

// Close stops delivering live updates to subscribers. Data already
// appended remains readable via Bytes/ForEach/Subscribe.
func (s *Storage) Close() {
	if s == nil {
		return
	}
	s.broadcaster.Stop()
}

// Append adds data to the end of the stream and wakes any live
// subscribers. The slice is retained as-is; callers that may mutate it
// afterward must pass a copy.
func (s *Storage) Append(data []byte) {
	if s == nil || len(data) == 0 {
		return
	}
	n := &node{data: data}
	s.tail.next.Store(n)
	s.tail = n
	s.broadcaster.Publish(struct{}{})
}

// Write implements io.Writer, copying p before storing it.
func (s *Storage) Write(p []byte) (int, error) {
	if s == nil || len(p) == 0 {
		return len(p), nil
	}
	cp := append([]byte(nil), p...)
	s.Append(cp)
	return len(p), nil
}

// ForEach visits every stored chunk in append order, stopping early if
// iter returns false.
func (s *Storage) ForEach(iter func([]byte) bool) {
	if s == nil || iter == nil {
		return
	}
	cur := s.head.next.Load()
	for cur != nil {
		if !iter(cur.data) {
			return
		}
		cur = cur.next.Load()
	}
}

// Bytes concatenates every stored chunk into one allocation.
func (s *Storage) Bytes() []byte {
	total := 0
	var chunks [][]byte
	s.ForEach(func(b []byte) bool {
		chunks = append(chunks, b)
		total += len(b)
		return true
	})
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func (s *Storage) String() string { return string(s.Bytes()) }

// Subscribe replays everything already stored, then streams live appends
// until Close is called. The returned channel is closed when the replay
// catches up to a closed Storage.
func (s *Storage) Subscribe(capacity int) <-chan []byte {
	ch := make(chan []byte, capacity)
	notifier, err := s.broadcaster.Subscribe()
	if err == nil {
		go s.subscribeLive(notifier, ch)
	} else {
		go s.subscribeClosed(ch)
	}
	return ch
}

func (s *Storage) subscribeLive(notifier chan struct{}, ch chan []byte) {
	id := uuid.New()
	logger.Printf("%s subscriber attached (live)", id)
	prev := s.head
	for {
		cur := prev.next.Load()
		if cur == nil {
			if _, ok := <-notifier; !ok {
				close(ch)
				return
			}
			continue
		}
		prev = cur
		ch <- cur.data
	}
}

func (s *Storage) subscribeClosed(ch chan []byte) {
	id := uuid.New()
	logger.Printf("%s subscriber attached (replay-only)", id)
	prev := s.head
	for {
		cur := prev.next.Load()
		if cur == nil {
			close(ch)
			return
		}
		prev = cur
		ch <- cur.data
	}
}
