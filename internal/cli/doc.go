// Package cli provides nix-shell compatible command-line parsing.
//
// Most arguments are passed to nix-shell as-is, but a few of them have to be
// acted on by the wrapper itself. To find those, the whole command line still
// has to be parsed, with the same quirks nix-shell has:
//   - Short option clusters are expanded the way nix 2.3.1 does it,
//     so "-pj16" becomes "-p", "-j", "16"
//   - -p/--packages, --pure/--impure are extracted into Args
//   - -i is only accepted in shebang mode and sets the interpreter
//   - --run/--command/--exec are only accepted outside shebang mode
//   - -A, -I, --arg, --argstr, --option and -j/--max-jobs are kept,
//     with their values, in OtherKW
//   - Any other token starting with a dash is an error
//
// Example usage:
//
//	args, err := cli.Parse(os.Args[1:], false)
//	if err != nil {
//	    var perr *cli.ParseError
//	    if errors.As(err, &perr) {
//	        ui.Fail("%s", perr.Msg)
//	    }
//	    os.Exit(1)
//	}
//
//	if args.Run.Kind == cli.RunExec {
//	    // args.Run.Program, args.Run.Args
//	}
package cli
