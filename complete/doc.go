// SPDX-License-Identifier: MIT

// Package complete implements complete search: generating every subset or
// permutation, backtracking, and meet in the middle.
//
// Generators call a visit function for every object and stop early when
// visit returns false. The slice passed to visit is reused between calls;
// copy it to keep it.
package complete
