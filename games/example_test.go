// SPDX-License-Identifier: MIT

package games_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/games"
)

func ExampleNimMove() {
	i, take, ok := games.NimMove(10, 12, 5)
	fmt.Println(i, take, ok)
	// Output: 0 1 true
}
