package cmd

import "github.com/fatih/color"

// Status glyphs for terse CLI feedback, the same three-symbol vocabulary
// the teacher's healthcheck output uses.
var (
	okStatus   = color.New(color.FgGreen, color.Bold).SprintFunc()("√")  // √
	warnStatus = color.New(color.FgYellow, color.Bold).SprintFunc()("‼") // ‼
	failStatus = color.New(color.FgRed, color.Bold).SprintFunc()("×")    // ×
)
