// SPDX-License-Identifier: MIT

package dijkstra

import "fmt"

// PathTo rebuilds the vertex sequence src → … → dst from a predecessor map
// returned with WithReturnPath. src == dst yields [src].
// Returns ErrNoPath if dst was not reached from src.
// Complexity: O(path length).
func PathTo(prev map[string]string, src, dst string) ([]string, error) {
	if src == dst {
		return []string{src}, nil
	}
	if prev[dst] == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}

	path := []string{dst}
	for cur := dst; cur != src; {
		p := prev[cur]
		if p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
