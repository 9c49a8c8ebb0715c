package capabilities

import "errors"

// ErrMinerUnavailable signals that no capability miner is configured.
// The extractor recovers from it via the fallback policy; it never reaches
// pipeline callers.
var ErrMinerUnavailable = errors.New("capability miner unavailable")
