// SPDX-License-Identifier: MIT

// Package greedy implements algorithms that build a solution by always
// making the choice that looks best at the moment.
//
//   - CoinsGreedy: change-making with the largest coin first; optimal for
//     canonical coin systems only.
//   - MaxEvents: interval scheduling by earliest end time.
//   - TasksDeadlines: shortest processing time first.
//   - MinAbsSum / MinSquareSum: the median and the mean.
//   - Huffman: optimal prefix-free codes.
package greedy
