// SPDX-License-Identifier: MIT

package greedy

import "errors"

var (
	// ErrNonPositive indicates a coin value, duration or frequency <= 0.
	ErrNonPositive = errors.New("greedy: value must be positive")

	// ErrNoChange indicates the greedy choice cannot form the sum exactly.
	ErrNoChange = errors.New("greedy: sum cannot be formed")

	// ErrEmpty indicates an empty input where at least one value is required.
	ErrEmpty = errors.New("greedy: empty input")

	// ErrBadInterval indicates an event that ends before it starts.
	ErrBadInterval = errors.New("greedy: event ends before it starts")
)

// Event is a half-open time interval [Start, End).
// Two events are compatible when one ends no later than the other starts.
type Event struct {
	Start, End int64
}

// Task is a job that takes Duration time units and is due at Deadline.
// Finishing at time x scores Deadline - x, which may be negative.
type Task struct {
	Duration, Deadline int64
}
