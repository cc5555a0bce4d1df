// Package commands parses and runs console lines of the form "cmd <name> -flag value".
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mattn/go-shellwords"
)

const prefix = "cmd"

// suggestThreshold is the minimum similarity for a "did you mean" hint.
const suggestThreshold = 0.5

// ErrNotCommand is returned by RunLine for lines without the "cmd " prefix.
var ErrNotCommand = errors.New(`not a command (commands start with "cmd ", try "cmd help")`)

// Command is a subcommand with its own flags. Flags start from their defaults on every run;
// Run is called after they parse.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a quiet, non-exiting flag set for a subcommand.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. fs may be nil for commands without flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name: usage" line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, n+": "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets a console line. Lines whose first word is "cmd" are split shell-style
// (quotes group words) and returned without it, with ok true.
func Parse(line string) (args []string, ok bool, err error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, strings.HasPrefix(strings.TrimSpace(line), prefix+" "), err
	}
	if len(words) == 0 || words[0] != prefix {
		return nil, false, nil
	}
	return words[1:], true, nil
}

// Execute runs args[0] with args[1:] as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (have: %s)", strings.Join(r.Names(), ", "))
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		if s := r.suggest(args[0]); s != "" {
			return fmt.Errorf("unknown command: %s (did you mean %s?)", args[0], s)
		}
		return fmt.Errorf("unknown command: %s", args[0])
	}
	resetFlags(cmd.FlagSet)
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: %s)", cmd.Name, err, cmd.Usage)
	}
	return cmd.Run()
}

// resetFlags restores every flag to its default so a value given on one run does not carry
// into the next. Values with a Reset method reset themselves.
func resetFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		if r, ok := f.Value.(interface{ Reset() }); ok {
			r.Reset()
			return
		}
		_ = f.Value.Set(f.DefValue)
	})
}

// suggest returns the registered name closest to name, or "" when none is close.
func (r *Registry) suggest(name string) string {
	best, bestScore := "", suggestThreshold
	lev := metrics.NewLevenshtein()
	for _, n := range r.Names() {
		if score := strutil.Similarity(name, n, lev); score >= bestScore {
			best, bestScore = n, score
		}
	}
	return best
}

// RunLine parses and executes one console line.
func (r *Registry) RunLine(line string) error {
	args, ok, err := Parse(line)
	if !ok {
		return ErrNotCommand
	}
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return r.Execute(args)
}
