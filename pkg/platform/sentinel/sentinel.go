package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and service clients return
// these (optionally wrapped) so callers can collapse them into fail-safe
// results at the boundary.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist (e.g. no carrier config or calling handle for a line)
// - ErrRemoteCall: transport-level failure talking to an external service
var (
	ErrNotFound   = errors.New("not found")
	ErrRemoteCall = errors.New("remote call failed")
)
