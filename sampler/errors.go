package sampler

import "errors"

// ErrSamplingTimeout is returned by Sample when the deadline passes before
// the requested number of samples has been drawn. It is an ordinary
// sentinel error, never a panic: the caller decides whether a partial batch
// of samples is still useful (§4.F "timeout").
var ErrSamplingTimeout = errors.New("sampler: timed out before drawing all requested samples")
