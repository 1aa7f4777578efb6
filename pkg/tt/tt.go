// Package tt supports table-driven tests with little boilerplate.
//
// A test table pairs the arguments of a function with the return values they
// are expected to produce:
//
//	tt.Test(t, tt.Fn("Len", (*seq.Seq[int]).Len), tt.Table{
//		tt.Args((*seq.Seq[int])(nil)).Rets(0),
//		tt.Args(&s).Rets(3),
//	})
//
// See the test case for this package for more example usage.
package tt

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments. A nil argument is passed
// as the zero value of the corresponding parameter, so a typed nil pointer
// does not need a conversion unless the function is variadic.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, the values are compared with cmp.Equal, with
// unexported fields taken into account.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// return fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if len(retsMatcher) != len(rets) {
				t.Errorf("%s(%s) returns %d values, test wants %d",
					fn.name, fn.formatArgs(test.args), len(rets), len(retsMatcher))
				continue
			}
			if want, ok := match(retsMatcher, rets); !ok {
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s",
					fn.name, fn.formatArgs(test.args), cmp.Diff(want, rets, allExported))
			}
		}
	}
}

func (fn *FnToTest) formatArgs(args []any) string {
	if fn.argsFmt != "" {
		return fmt.Sprintf(fn.argsFmt, args...)
	}
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

var allExported = cmp.Exporter(func(reflect.Type) bool { return true })

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }
func (anyMatcher) String() string      { return "<any>" }

// ErrorIs returns a Matcher that matches an error value for which
// errors.Is(value, target) is true. ErrorIs(nil) matches a nil error.
func ErrorIs(target error) Matcher { return errorIsMatcher{target} }

type errorIsMatcher struct{ target error }

func (m errorIsMatcher) Match(v RetValue) bool {
	err, _ := v.(error)
	if m.target == nil {
		return err == nil
	}
	return errors.Is(err, m.target)
}

func (m errorIsMatcher) String() string { return fmt.Sprintf("<error is %v>", m.target) }

// Checks all return values against the matchers. It also returns the wanted
// values for the error message, with matched matchers replaced by the actual
// values so that they don't show up in the diff.
func match(matchers, actual []any) ([]any, bool) {
	want := make([]any, len(matchers))
	ok := true
	for i, m := range matchers {
		if matchOne(m, actual[i]) {
			want[i] = actual[i]
		} else {
			want[i] = m
			if m, isMatcher := m.(Matcher); isMatcher {
				want[i] = fmt.Sprint(m)
			}
			ok = false
		}
	}
	return want, ok
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, allExported)
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := fnValue.Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

// Returns the type of the i-th argument passed to a function of type fnType.
func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
