package ui

import (
	"errors"
	"fmt"
	"log"
)

// ErrorKind identifies the category of a toolkit error.
type ErrorKind int

const (
	// KindValidation is a wrong value or an out-of-range number passed to a setter.
	KindValidation ErrorKind = iota
	// KindColor is a string that does not parse as a terminal color.
	KindColor
	// KindStructure is an operation the component tree or page stack cannot perform.
	KindStructure
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindColor:
		return "color"
	case KindStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Structural errors.
var (
	ErrLastPage               = errors.New("cannot pop the last page of the stack")
	ErrOutOfBounds            = errors.New("stack index out of bounds")
	ErrNilPage                = errors.New("page is nil")
	ErrPageInStack            = errors.New("page is already in a navigation stack")
	ErrPageDestroyed          = errors.New("page has been destroyed")
	ErrRootAlreadySet         = errors.New("root page already set")
	ErrRootPreventsComponents = errors.New("root page set, cannot add other components")
	ErrComponentsPreventRoot  = errors.New("components already added, cannot set a root page")
	ErrMissingID              = errors.New("component has no id")
	ErrAlreadyPresented       = errors.New("app is already presented")
	ErrNotPresented           = errors.New("app has not been presented")
	ErrNotFound               = errors.New("no component with id")
	ErrNoTarget               = errors.New("popover target not set")
	ErrCycle                  = errors.New("child is an ancestor of the parent")
)

// Validation errors.
var (
	ErrNilComponent     = errors.New("component is nil")
	ErrOutOfRange       = errors.New("value out of range")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidDirection = errors.New("invalid direction, want up, down, left or right")
	ErrEmptyModifier    = errors.New("modifier is empty")
	ErrInvalidColor     = errors.New("invalid color")
)

// Error is a structured toolkit error. Op names the failing call, e.g.
// "Navigator.Pop" or "Component.SetAlpha".
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func structureErr(op string, err error) error {
	return &Error{Op: op, Kind: KindStructure, Err: err}
}

func validationErr(op string, err error) error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

func colorErr(op, value string) error {
	return &Error{Op: op, Kind: KindColor, Err: fmt.Errorf("%w %q", ErrInvalidColor, value)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Reporter receives errors from operations that skip invalid input and carry on.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

// Report implements Reporter.
func (f ReporterFunc) Report(err error) { f(err) }

// LogReporter writes reported errors to the standard logger.
type LogReporter struct{}

// Report implements Reporter.
func (LogReporter) Report(err error) {
	if err == nil {
		return
	}
	log.Printf("ui: %v", err)
}

// ErrorLog collects reported errors. Useful in tests.
type ErrorLog struct {
	Errors []error
}

// Report implements Reporter.
func (l *ErrorLog) Report(err error) {
	if err != nil {
		l.Errors = append(l.Errors, err)
	}
}

func report(r Reporter, err error) error {
	if err != nil && r != nil {
		r.Report(err)
	}
	return err
}
