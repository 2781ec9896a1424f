// Package runtime handles connection acceptance, registration, message
// routing, and session lifecycle. It orchestrates the system without
// containing presentation logic.
package runtime

import (
	"sync"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/contract"
)

// Roster is the concurrent registry of registered sessions, keyed by
// normalized uid. Enumeration follows join order.
type Roster struct {
	mu    sync.RWMutex
	peers map[string]contract.Peer
	order []string // normalized ids, join order
}

func NewRoster() *Roster {
	return &Roster{peers: make(map[string]contract.Peer)}
}

// TryRegister inserts the peer under its normalized id unless that id
// is already taken. Check and insert form a single critical section:
// two concurrent registrations with the same key can never both
// succeed.
func (r *Roster) TryRegister(normalizedID string, peer contract.Peer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.peers[normalizedID]; exists {
		return false
	}
	r.peers[normalizedID] = peer
	r.order = append(r.order, normalizedID)
	return true
}

// Remove frees the slot immediately; the same id may re-register right
// away.
func (r *Roster) Remove(normalizedID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.peers[normalizedID]; !exists {
		return
	}
	delete(r.peers, normalizedID)
	for i, id := range r.order {
		if id == normalizedID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Roster) Lookup(normalizedID string) (contract.Peer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	peer, ok := r.peers[normalizedID]
	return peer, ok
}

// Snapshot returns a join-ordered, point-in-time copy safe to iterate
// without holding the registry lock during delivery.
func (r *Roster) Snapshot() []contract.Peer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contract.Peer, 0, len(r.order))
	for _, id := range r.order {
		if peer, ok := r.peers[id]; ok {
			out = append(out, peer)
		}
	}
	return out
}

func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}

// Clear empties the roster and returns the evicted peers in join order
// so the caller can notify and close them outside the lock.
func (r *Roster) Clear() []contract.Peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := make([]contract.Peer, 0, len(r.order))
	for _, id := range r.order {
		if peer, ok := r.peers[id]; ok {
			evicted = append(evicted, peer)
		}
	}
	r.peers = make(map[string]contract.Peer)
	r.order = nil
	return evicted
}
