// SPDX-License-Identifier: MIT

package dp

import "errors"

const (
	// MaxTilingWidth bounds the smaller side of a CountTilings grid; the
	// profile table has 2^width entries.
	MaxTilingWidth = 16

	// MaxTable bounds the entries of every other DP table: the target sum of
	// MinCoins and CoinWays, the total weight of KnapsackSums, the
	// (n+1)·(capacity+1) grid of Knapsack01, the dice·faces range of
	// DiceSumDistribution and the full EditDistance matrix.
	MaxTable = 1 << 25
)

var (
	// ErrNonPositive indicates a coin value or dimension <= 0.
	ErrNonPositive = errors.New("dp: value must be positive")

	// ErrNegative indicates a negative target sum, weight or capacity.
	ErrNegative = errors.New("dp: value must be non-negative")

	// ErrNoSolution indicates a sum that no coin combination forms.
	ErrNoSolution = errors.New("dp: no solution")

	// ErrRagged indicates grid rows of different lengths.
	ErrRagged = errors.New("dp: rows have different lengths")

	// ErrLengthMismatch indicates weights and values of different lengths.
	ErrLengthMismatch = errors.New("dp: weights and values differ in length")

	// ErrTooLarge indicates a table beyond MaxTilingWidth or MaxTable.
	ErrTooLarge = errors.New("dp: input too large")

	// ErrPathNeedsMatrix indicates a script request with RollingArray storage.
	ErrPathNeedsMatrix = errors.New("dp: edit script requires MemoryMode=FullMatrix")
)

// fits reports whether a rows×cols table stays within MaxTable entries.
func fits(rows, cols int) bool {
	return rows <= MaxTable && cols <= MaxTable && rows <= MaxTable/max(cols, 1)
}

// MemoryMode selects how EditDistance stores its table.
type MemoryMode int

const (
	// FullMatrix keeps all (n+1)×(m+1) entries. Memory O(n·m).
	FullMatrix MemoryMode = iota

	// RollingArray keeps the previous and the current row. Memory O(m).
	RollingArray
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case RollingArray:
		return "rolling"
	default:
		return "unknown"
	}
}

// EditOptions configures EditDistance.
type EditOptions struct {
	MemoryMode   MemoryMode
	ReturnScript bool
}

// DefaultEditOptions returns FullMatrix storage without a script.
func DefaultEditOptions() EditOptions {
	return EditOptions{MemoryMode: FullMatrix}
}

// OpKind is the kind of one edit step.
type OpKind int

const (
	Match OpKind = iota
	Substitute
	Insert
	Delete
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	return [...]string{"match", "substitute", "insert", "delete"}[k]
}

// EditOp is one step of an edit script turning a into b. I indexes a and
// J indexes b; Insert has no I and Delete has no J, both reported as -1.
type EditOp struct {
	Kind OpKind
	I, J int
}
