// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// It must be deterministic and injective over the indices it is used for.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z",
// 26→"AA". Negative indices fall back to DefaultIDFn.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index: "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
