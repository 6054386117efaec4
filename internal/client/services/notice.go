package services

import (
	"sync"
	"time"
)

// Notice holds a success message that disappears ttl after it was shown.
//
// Showing a new message stops the previous timer, and each timer only
// clears the message it was started for, so an old timer never wipes a
// newer message.
type Notice struct {
	mu    sync.Mutex
	ttl   time.Duration
	text  string
	gen   uint64
	timer *time.Timer
}

// NewNotice returns a Notice whose messages live for ttl. A non-positive
// ttl keeps each message until the next one replaces it.
func NewNotice(ttl time.Duration) *Notice {
	return &Notice{ttl: ttl}
}

func (n *Notice) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.gen++
	n.text = msg

	if n.ttl <= 0 {
		return
	}
	gen := n.gen
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(gen) })
}

func (n *Notice) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen != gen {
		return
	}
	n.text = ""
	n.timer = nil
}

// Text returns the current message, or "" once it has expired.
func (n *Notice) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

// Clear removes the message and its pending timer.
func (n *Notice) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	n.gen++
	n.text = ""
}

func (n *Notice) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
