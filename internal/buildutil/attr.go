// Package buildutil provides utilities for extracting attributes from
// buildtools AST nodes.
//
// Missing attributes are not errors: the getters return the zero value and
// a nil error. An attribute bound to an expression of the wrong type is
// reported as an *AttrError.
package buildutil

import (
	"fmt"
	"strconv"

	"github.com/bazelbuild/buildtools/build"
)

// AttrError reports an attribute whose value has the wrong type.
type AttrError struct {
	Name string
	Want string
	Got  build.Expr
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("attribute %s: want %s, got %s", e.Name, e.Want, build.FormatString(e.Got))
}

// Lookup returns the expression bound to the named argument of call.
func Lookup(call *build.CallExpr, name string) (build.Expr, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
			return assign.RHS, true
		}
	}
	return nil, false
}

// String extracts a string attribute from a function call by name.
func String(call *build.CallExpr, name string) (string, error) {
	expr, ok := Lookup(call, name)
	if !ok {
		return "", nil
	}
	str, ok := expr.(*build.StringExpr)
	if !ok {
		return "", &AttrError{Name: name, Want: "string", Got: expr}
	}
	return str.Value, nil
}

// Int64 extracts an integer attribute from a function call by name.
// Negative literals are accepted.
func Int64(call *build.CallExpr, name string) (int64, error) {
	expr, ok := Lookup(call, name)
	if !ok {
		return 0, nil
	}
	neg := false
	if unary, ok := expr.(*build.UnaryExpr); ok && unary.Op == "-" {
		neg, expr = true, unary.X
	}
	lit, ok := expr.(*build.LiteralExpr)
	if !ok {
		return 0, &AttrError{Name: name, Want: "int", Got: expr}
	}
	val, err := strconv.ParseInt(lit.Token, 0, 64)
	if err != nil {
		return 0, &AttrError{Name: name, Want: "int", Got: expr}
	}
	if neg {
		val = -val
	}
	return val, nil
}

// Bool extracts a boolean attribute (True or False) from a function call.
func Bool(call *build.CallExpr, name string) (bool, error) {
	expr, ok := Lookup(call, name)
	if !ok {
		return false, nil
	}
	if ident, ok := expr.(*build.Ident); ok {
		switch ident.Name {
		case "True":
			return true, nil
		case "False":
			return false, nil
		}
	}
	return false, &AttrError{Name: name, Want: "bool", Got: expr}
}

// Names returns the names of all named arguments in call order.
func Names(call *build.CallExpr) []string {
	var names []string
	for _, arg := range call.List {
		if assign, ok := arg.(*build.AssignExpr); ok {
			if lhs, ok := assign.LHS.(*build.Ident); ok {
				names = append(names, lhs.Name)
			}
		}
	}
	return names
}

// Positional returns the number of positional arguments.
func Positional(call *build.CallExpr) int {
	n := 0
	for _, arg := range call.List {
		if _, ok := arg.(*build.AssignExpr); !ok {
			n++
		}
	}
	return n
}

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// Pos returns the 1-based line and column where expr starts.
func Pos(expr build.Expr) (line, col int) {
	start, _ := expr.Span()
	return start.Line, start.LineRune
}
