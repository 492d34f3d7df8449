// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	labelStyle = color.New(color.FgCyan).SprintFunc()
	valueStyle = color.New(color.Bold).SprintFunc()
	bestStyle  = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnStyle  = color.New(color.FgYellow).SprintFunc()
)

// field prints one aligned "label: value" line.
func field(w io.Writer, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", labelStyle(fmt.Sprintf("%-14s", label+":")), valueStyle(fmt.Sprintf(format, args...)))
}
