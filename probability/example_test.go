// SPDX-License-Identifier: MIT

package probability_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/probability"
)

func ExampleMarkov() {
	dist, _ := probability.Markov([]float64{1, 0, 0, 0, 0}, building, 3)
	fmt.Println(dist)
	// Output: [0 0.75 0 0.25 0]
}
