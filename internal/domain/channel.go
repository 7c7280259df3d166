package domain

// PushChannel is one live server-to-client notification connection. The
// registry owns the mapping ref_id -> channel; the channel itself only
// reports openness and liveness.
//
// Probe marks the peer unconfirmed and sends a liveness probe. Confirmed
// reports whether the peer answered since the last Probe, so a channel that
// misses two consecutive probes is reaped by the monitor.
type PushChannel interface {
	IsOpen() bool
	Send(payload []byte) error
	Probe() error
	Confirmed() bool
	Close() error
}
