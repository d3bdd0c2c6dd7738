package jurisdictions

import "errors"

// ErrUnknownJurisdiction indicates a state code with no ruleset entry.
// Callers must reject the request rather than default to another state.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
