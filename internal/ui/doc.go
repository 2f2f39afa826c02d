// Package ui provides terminal output formatting for nixshell-args.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Info, success, failure, and warning messages
//   - Aligned label/value fields for parse summaries
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection.
//
// Example usage:
//
//	ui.Success("Parsed %d arguments", n)
//	ui.Field("packages", args.Packages)
//	ui.Field("rest", ui.Tokens(args.Rest))
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
