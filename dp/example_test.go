// SPDX-License-Identifier: MIT

package dp_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/dp"
)

func ExampleEditDistance() {
	d, script, _ := dp.EditDistance([]rune("LOVE"), []rune("MOVIE"), dp.EditOptions{ReturnScript: true})
	fmt.Println(d)
	for _, op := range script {
		fmt.Println(op.Kind, op.I, op.J)
	}
	// Output:
	// 2
	// substitute 0 0
	// match 1 1
	// match 2 2
	// insert -1 3
	// match 3 4
}

func ExampleCountTilings() {
	n, _ := dp.CountTilings(4, 7, 0)
	fmt.Println(n)
	// Output: 781
}
