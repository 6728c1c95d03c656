// Package scenario replays a list of trie operations and keeps every version
// produced along the way, so that searches can target any earlier snapshot.
package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/trie"
)

// ErrInvalidStep is returned for steps that cannot be applied
var ErrInvalidStep = errors.New("invalid step")

// NotFound is printed for searches that find no value of the requested type
const NotFound = "hasNoValue"

// Op identifies the operation performed by a step
type Op string

const (
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpSearch Op = "search"
)

// Value types understood by insert and search steps
const (
	TypeInt    = "int"
	TypeString = "string"
	TypeFloat  = "float"
	TypeBool   = "bool"
)

// Step is a single operation of a scenario
type Step struct {
	Op    Op     `mapstructure:"op"`
	Key   string `mapstructure:"key"`
	Type  string `mapstructure:"type"`
	Value any    `mapstructure:"value"`

	// Version selects the snapshot a search runs against. Nil means the
	// latest version; 0 is the empty trie the scenario starts from.
	Version *int `mapstructure:"version"`
}

// Runner applies steps to a growing history of trie versions
type Runner struct {
	history []trie.Trie
	out     io.Writer
	logger  zerolog.Logger
}

// NewRunner creates a runner starting from an empty trie. Search results are
// written to out, one per line.
func NewRunner(out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{
		history: []trie.Trie{trie.New()},
		out:     out,
		logger:  logger,
	}
}

// Current returns the latest version
func (r *Runner) Current() trie.Trie {
	return r.history[len(r.history)-1]
}

// Version returns the snapshot with index i
func (r *Runner) Version(i int) (trie.Trie, bool) {
	if i < 0 || i >= len(r.history) {
		return trie.Trie{}, false
	}
	return r.history[i], true
}

// Versions returns the number of snapshots, including the initial empty one
func (r *Runner) Versions() int {
	return len(r.history)
}

// Run applies all steps in order and stops at the first failing one
func (r *Runner) Run(steps []Step) error {
	for i, step := range steps {
		if err := r.Apply(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Apply executes a single step. Insert and remove steps append a new version
// to the history, even when removal leaves the trie unchanged.
func (r *Runner) Apply(step Step) error {
	switch step.Op {
	case OpInsert:
		next, err := insertTyped(r.Current(), step)
		if err != nil {
			return err
		}
		r.push(step, next)
	case OpRemove:
		r.push(step, trie.Remove(r.Current(), step.Key))
	case OpSearch:
		return r.search(step)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, step.Op)
	}
	return nil
}

func (r *Runner) push(step Step, next trie.Trie) {
	r.history = append(r.history, next)
	r.logger.Debug().
		Str("op", string(step.Op)).
		Str("key", step.Key).
		Int("version", len(r.history)-1).
		Int("keys", next.Len()).
		Msg("Applied step")
}

func (r *Runner) search(step Step) error {
	t := r.Current()
	if step.Version != nil {
		var ok bool
		if t, ok = r.Version(*step.Version); !ok {
			return fmt.Errorf("%w: version %d does not exist", ErrInvalidStep, *step.Version)
		}
	}

	value, found, err := searchTyped(t, step)
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("key", step.Key).
		Str("type", step.Type).
		Bool("found", found).
		Msg("Searched key")

	if !found {
		_, err = fmt.Fprintln(r.out, NotFound)
	} else {
		_, err = fmt.Fprintln(r.out, value)
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func insertTyped(t trie.Trie, step Step) (trie.Trie, error) {
	var err error
	switch step.Type {
	case TypeInt:
		var v int
		if v, err = cast.ToIntE(step.Value); err == nil {
			return trie.Insert(t, step.Key, v), nil
		}
	case TypeString:
		var v string
		if v, err = cast.ToStringE(step.Value); err == nil {
			return trie.Insert(t, step.Key, v), nil
		}
	case TypeFloat:
		var v float64
		if v, err = cast.ToFloat64E(step.Value); err == nil {
			return trie.Insert(t, step.Key, v), nil
		}
	case TypeBool:
		var v bool
		if v, err = cast.ToBoolE(step.Value); err == nil {
			return trie.Insert(t, step.Key, v), nil
		}
	default:
		return t, fmt.Errorf("%w: unknown type %q", ErrInvalidStep, step.Type)
	}
	return t, fmt.Errorf("%w: value %v for key %q: %w", ErrInvalidStep, step.Value, step.Key, err)
}

// searchTyped looks up step.Key as step.Type. An empty type matches a value of
// any type.
func searchTyped(t trie.Trie, step Step) (any, bool, error) {
	switch step.Type {
	case "":
		v, ok := t.Lookup(step.Key)
		return v, ok, nil
	case TypeInt:
		v, ok := trie.Search[int](t, step.Key)
		return v, ok, nil
	case TypeString:
		v, ok := trie.Search[string](t, step.Key)
		return v, ok, nil
	case TypeFloat:
		v, ok := trie.Search[float64](t, step.Key)
		return v, ok, nil
	case TypeBool:
		v, ok := trie.Search[bool](t, step.Key)
		return v, ok, nil
	default:
		return nil, false, fmt.Errorf("%w: unknown type %q", ErrInvalidStep, step.Type)
	}
}
