package runtime

import (
	"fmt"
	"log/slog"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/contract"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
)

// Router owns the two delivery primitives: broadcast-to-all and
// send-to-one. Delivery always goes through a roster snapshot or a
// lookup, never a held lock, so a send can block on the network without
// stalling registrations.
type Router struct {
	log    *slog.Logger
	roster contract.IRoster
	// onDeliveryFailure schedules a broken peer for removal. Optional.
	onDeliveryFailure func(peer contract.Peer)
}

func NewRouter(log *slog.Logger, roster contract.IRoster) *Router {
	return &Router{log: log, roster: roster}
}

// OnDeliveryFailure installs the callback invoked when a broadcast send
// to one peer fails. Called once at wiring time, before any traffic.
func (r *Router) OnDeliveryFailure(fn func(peer contract.Peer)) {
	r.onDeliveryFailure = fn
}

// BroadcastToAll delivers the line to every peer in a roster snapshot.
// A failing send is isolated: it is logged, the peer is scheduled for
// removal, and delivery to the rest continues.
func (r *Router) BroadcastToAll(line string) {
	for _, peer := range r.roster.Snapshot() {
		if err := peer.Send(line); err != nil {
			r.log.Warn("Broadcast delivery failed",
				"student", peer.Student().Display(), "err", err)
			if r.onDeliveryFailure != nil {
				r.onDeliveryFailure(peer)
			}
		}
	}
}

// SendPrivate delivers the line to exactly one registered peer.
func (r *Router) SendPrivate(normalizedID, line string) error {
	peer, ok := r.roster.Lookup(normalizedID)
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrNotConnected, normalizedID)
	}
	if err := peer.Send(line); err != nil {
		return fmt.Errorf("private delivery to %s: %w", normalizedID, err)
	}
	return nil
}
