// Package script provides a sandboxed Lisp scripting engine for driving hedra mesh
// editing operations. It wraps zygomys and exposes the editor's primitives, operators,
// transforms, and scene management as a small DSL.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/hedralab/hedra"
)

// EvalError represents a non-fatal error encountered during evaluation, such as a parse
// error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for hedra script evaluation. Each call to
// Evaluate creates a fresh sandboxed environment; the builtins operate on the Engine's
// Scene. Evaluate serializes itself, so the Scene is only ever edited by one evaluation
// at a time.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	scene      *hedra.Scene
}

// NewEngine creates a new Engine editing the given Scene.
func NewEngine(scene *hedra.Scene) *Engine {
	return &Engine{scene: scene}
}

// Scene returns the Scene the Engine's builtins operate on.
func (e *Engine) Scene() *hedra.Scene {
	return e.scene
}

// Evaluate runs the given Lisp source against the Engine's Scene and returns the
// human-readable log lines the builtins produced.
//
// Return semantics:
//   - On success: returns log + nil errors + nil error
//   - On parse/eval failure: returns partial log + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) ([]string, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		log, evalErrs, err := e.evaluate(source)
		ch <- evalResult{log: log, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) ([]string, []EvalError, error) {
	// Empty source is a valid program that does nothing.
	if strings.TrimSpace(source) == "" {
		return nil, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls
	// directly; the registered builtins are the only way scripts touch the world.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	state := &evalState{scene: e.scene}
	registerBuiltins(env, state)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return state.log, parseZygomysError(err), nil
	}

	_, err = env.Run()
	if err != nil {
		return state.log, parseZygomysError(err), nil
	}

	return state.log, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values,
// extracting line number information from the message where possible.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Message: detail,
		}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Message: detail,
		}}
	}

	return []EvalError{{
		Message: strings.TrimSpace(msg),
	}}
}
