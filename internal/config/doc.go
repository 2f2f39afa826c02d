// Package config loads nixshell-args configuration.
//
// Configuration comes from the environment:
//   - NIXSHELL_ARGS_SHEBANG=1: parse with the shebang grammar
//   - NIXSHELL_ARGS_LINE: parse this line instead of the process arguments
//   - NIXSHELL_ARGS_DEBUG=1: log the token stream to stderr
//   - NIXSHELL_ARGS_DEFAULTS: path of a defaults file
//   - NO_COLOR: disable colored output
//
// The defaults file holds nix-shell arguments that are prepended to every
// command line. Blank lines and lines starting with # are skipped; other
// lines are split with shell quoting rules:
//
//	# always use the pinned nixpkgs
//	-I nixpkgs=/src/nixpkgs
//	--option substituters 'https://cache.example.org'
//
// A missing defaults file is not an error.
package config
