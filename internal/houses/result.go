package houses

import (
	"errors"

	"daysoflight/internal/model"
)

// ErrNetworkOrServer is the only failure kind the fetch recognises: the
// request failed, the server answered with a non-success status, or the
// body could not be decoded.
var ErrNetworkOrServer = errors.New("houses: network or server error")

// State identifies which of the three fetch states a Result is in.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a house fetch. Exactly one state is active.
// The zero value is Loading.
type Result struct {
	state State
	items []model.House
	err   error
}

// Loading returns a Result for a request that is still in flight.
func Loading() Result {
	return Result{state: StateLoading}
}

// Success returns a Result holding the fetched houses. items may be empty.
func Success(items []model.House) Result {
	return Result{state: StateSuccess, items: items}
}

// Failure returns an error Result. A nil err is replaced by ErrNetworkOrServer.
func Failure(err error) Result {
	if err == nil {
		err = ErrNetworkOrServer
	}
	return Result{state: StateError, err: err}
}

func (r Result) State() State { return r.state }

// Items returns the fetched houses. It is nil unless the state is StateSuccess.
func (r Result) Items() []model.House { return r.items }

// Err returns the failure reason. It is nil unless the state is StateError.
func (r Result) Err() error { return r.err }
