// SPDX-License-Identifier: MIT

package greedy

import (
	"cmp"
	"container/heap"
	"fmt"
	"sort"
)

// Huffman builds an optimal prefix-free binary code for the given symbol
// frequencies and returns the code word of every symbol.
//
// Steps:
//  1. Start with one leaf per symbol, ordered by (frequency, symbol).
//  2. Repeatedly merge the two lightest trees; the first one popped
//     becomes the 0 branch. Equal weights pop in creation order.
//  3. Read code words off the final tree.
//
// A single symbol gets the code "0".
// Complexity: O(n log n).
func Huffman[K cmp.Ordered](freq map[K]int64) (map[K]string, error) {
	if len(freq) == 0 {
		return nil, ErrEmpty
	}
	symbols := make([]K, 0, len(freq))
	for s, f := range freq {
		if f <= 0 {
			return nil, fmt.Errorf("%w: frequency of %v is %d", ErrNonPositive, s, f)
		}
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(a, b int) bool {
		fa, fb := freq[symbols[a]], freq[symbols[b]]
		if fa != fb {
			return fa < fb
		}

		return symbols[a] < symbols[b]
	})

	nodes := make([]huffNode, 0, 2*len(symbols)-1)
	pq := &huffPQ{nodes: &nodes}
	for i, s := range symbols {
		nodes = append(nodes, huffNode{weight: freq[s], leaf: i, left: -1, right: -1})
		heap.Push(pq, i)
	}
	for pq.Len() > 1 {
		a := heap.Pop(pq).(int)
		b := heap.Pop(pq).(int)
		nodes = append(nodes, huffNode{weight: nodes[a].weight + nodes[b].weight, leaf: -1, left: a, right: b})
		heap.Push(pq, len(nodes)-1)
	}

	codes := make(map[K]string, len(symbols))
	var walk func(v int, prefix string)
	walk = func(v int, prefix string) {
		if n := nodes[v]; n.leaf >= 0 {
			if prefix == "" {
				prefix = "0"
			}
			codes[symbols[n.leaf]] = prefix
		} else {
			walk(n.left, prefix+"0")
			walk(n.right, prefix+"1")
		}
	}
	walk(len(nodes)-1, "")

	return codes, nil
}

type huffNode struct {
	weight      int64
	leaf        int
	left, right int
}

// huffPQ is a min-heap of node indices ordered by weight, then index.
type huffPQ struct {
	items []int
	nodes *[]huffNode
}

func (pq *huffPQ) Len() int { return len(pq.items) }

func (pq *huffPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	wa, wb := (*pq.nodes)[a].weight, (*pq.nodes)[b].weight
	if wa != wb {
		return wa < wb
	}

	return a < b
}

func (pq *huffPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *huffPQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

func (pq *huffPQ) Pop() interface{} {
	old := pq.items
	x := old[len(old)-1]
	pq.items = old[:len(old)-1]

	return x
}
