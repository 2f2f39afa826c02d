package cli

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/rickgorman/nixshell-args/pkg/hash"
)

// DefaultInterpreter is used when no -i flag is given in shebang mode.
const DefaultInterpreter = "bash"

// RunKind tells how the wrapped shell should eventually run.
type RunKind int

const (
	// RunInteractiveShell: no --run, --command or --exec.
	RunInteractiveShell RunKind = iota
	// RunShell: --run CMD | --command CMD
	RunShell
	// RunExec: --exec CMD ARGS...
	RunExec
)

// RunMode is the parsed run directive. Command is set for RunShell;
// Program and Args are set for RunExec.
type RunMode struct {
	Kind    RunKind
	Command string
	Program string
	Args    []string
}

func (r RunMode) String() string {
	switch r.Kind {
	case RunShell:
		return fmt.Sprintf("shell %q", r.Command)
	case RunExec:
		return fmt.Sprintf("exec %q %q", r.Program, r.Args)
	default:
		return "interactive"
	}
}

// Args represents parsed nix-shell arguments.
type Args struct {
	// -p | --packages
	Packages bool
	// --pure sets, --impure clears; last one wins
	Pure bool
	// -i (shebang mode only)
	Interpreter string
	// --run | --command | --exec (not in shebang mode)
	Run RunMode

	// Positional arguments
	Rest []string
	// Recognized flags kept for nix-shell, values included
	OtherKW []string
}

// ParseError is returned for unknown flags and flags missing their values.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Parse parses nix-shell arguments. tokens must not include the program name.
// inShebang selects the grammar used when running as a script interpreter.
func Parse(tokens []string, inShebang bool) (*Args, error) {
	args := &Args{
		Interpreter: DefaultInterpreter,
		Run:         RunMode{Kind: RunInteractiveShell},
		Rest:        []string{},
		OtherKW:     []string{},
	}

	q := newTokenQueue(tokens)
	for {
		arg, ok := expandNext(q)
		if !ok {
			break
		}

		switch {
		case arg == "--attr" || arg == "-A":
			if err := args.keep(q, arg, "-A", 1); err != nil {
				return nil, err
			}

		case arg == "-I":
			if err := args.keep(q, arg, "-I", 1); err != nil {
				return nil, err
			}

		case arg == "--arg" || arg == "--argstr" || arg == "--option":
			if err := args.keep(q, arg, arg, 2); err != nil {
				return nil, err
			}

		case arg == "-j" || arg == "--max-jobs":
			if err := args.keep(q, arg, "--max-jobs", 1); err != nil {
				return nil, err
			}

		case arg == "--pure":
			args.Pure = true

		case arg == "--impure":
			args.Pure = false

		case arg == "--packages" || arg == "-p":
			args.Packages = true

		case arg == "-i" && inShebang:
			v, err := takeValue(q, arg)
			if err != nil {
				return nil, err
			}
			args.Interpreter = v

		case (arg == "--run" || arg == "--command") && !inShebang:
			v, err := takeValue(q, arg)
			if err != nil {
				return nil, err
			}
			args.Run = RunMode{Kind: RunShell, Command: v}

		case arg == "--exec" && !inShebang:
			program, err := takeValue(q, arg)
			if err != nil {
				return nil, err
			}
			args.Run = RunMode{Kind: RunExec, Program: program, Args: q.drain()}
			return args, nil

		case strings.HasPrefix(arg, "-"):
			return nil, &ParseError{Msg: fmt.Sprintf("unexpected arg %q", arg)}

		default:
			args.Rest = append(args.Rest, arg)
		}
	}

	return args, nil
}

// ParseLine splits line with shell quoting rules and parses the result.
func ParseLine(line string, inShebang bool) (*Args, error) {
	tokens, err := SplitLine(line)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, inShebang)
}

// SplitLine splits line into tokens with shell quoting rules.
func SplitLine(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", line, err)
	}
	return tokens, nil
}

// keep appends name followed by n values of flag to OtherKW. Nothing is
// appended unless all n values are present.
func (a *Args) keep(q *tokenQueue, flag, name string, n int) error {
	kw := []string{name}
	for i := 0; i < n; i++ {
		v, err := takeValue(q, flag)
		if err != nil {
			return err
		}
		kw = append(kw, v)
	}
	a.OtherKW = append(a.OtherKW, kw...)
	return nil
}

// takeValue pops the raw value token following flag.
func takeValue(q *tokenQueue, flag string) (string, error) {
	v, ok := q.popFront()
	if !ok {
		return "", &ParseError{Msg: fmt.Sprintf("flag %q requires more arguments", flag)}
	}
	return v, nil
}

// ForwardArgs returns the arguments to hand to nix-shell: OtherKW, the
// purity and package flags, then Rest. The run mode and interpreter are
// handled by the caller and never forwarded.
func (a *Args) ForwardArgs() []string {
	out := make([]string, 0, len(a.OtherKW)+len(a.Rest)+2)
	out = append(out, a.OtherKW...)
	if a.Pure {
		out = append(out, "--pure")
	}
	if a.Packages {
		out = append(out, "--packages")
	}
	return append(out, a.Rest...)
}

// Fingerprint returns a short digest of every field, suitable as a cache key.
func (a *Args) Fingerprint() string {
	fields := []string{
		fmt.Sprintf("packages=%t", a.Packages),
		fmt.Sprintf("pure=%t", a.Pure),
		"interpreter=" + a.Interpreter,
		fmt.Sprintf("run=%d", a.Run.Kind),
		a.Run.Command,
		a.Run.Program,
	}
	fields = append(fields, hash.TokensHash(a.Run.Args))
	fields = append(fields, hash.TokensHash(a.Rest))
	fields = append(fields, hash.TokensHash(a.OtherKW))
	return hash.ShortHash(hash.TokensHash(fields))
}
