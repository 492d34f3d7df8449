// SPDX-License-Identifier: MIT

// Command coilfield evaluates magnetic fields of circular current loops.
package main

import (
	"github.com/katalvlaran/coilfield/internal/cli"
)

func main() {
	cli.Execute()
}
