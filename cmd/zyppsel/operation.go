package main

import (
	"fmt"
	"strings"

	selectable "github.com/albertocavalcante/go-selectable"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/status"
)

// Actions accepted besides status names.
const (
	actionUpToDate  = "up-to-date"
	actionInstalled = "installed"
	actionDeleted   = "deleted"
	actionUnset     = "unset"
)

// operation is one "ident=action" argument.
type operation struct {
	Ident  string `json:"ident" yaml:"ident"`
	Action string `json:"action" yaml:"action"`
}

func parseOperation(arg string) (operation, error) {
	ident, action, ok := strings.Cut(arg, "=")
	if !ok || ident == "" || action == "" {
		return operation{}, commandError(fmt.Sprintf("bad operation %q: want ident=action", arg), nil)
	}
	op := operation{Ident: ident, Action: strings.ToLower(action)}
	switch op.Action {
	case actionUpToDate, actionInstalled, actionDeleted, actionUnset:
		return op, nil
	}
	if _, err := status.Parse(action); err != nil {
		return operation{}, commandError(fmt.Sprintf("bad operation %q", arg), err)
	}
	return op, nil
}

// apply runs the operation and reports whether it was accepted.
func (op operation) apply(s *selectable.Selectable, causer pool.Causer) bool {
	switch op.Action {
	case actionUpToDate:
		return s.SetUpToDate(causer)
	case actionInstalled:
		return s.SetInstalled(causer)
	case actionDeleted:
		return s.SetDeleted(causer)
	case actionUnset:
		return s.Unset(causer)
	}
	target, err := status.Parse(op.Action)
	if err != nil {
		return false
	}
	return s.SetStatus(target, causer)
}

// applyAll resolves and applies every argument in order. It returns the
// result of each operation.
func applyAll(sess *session, args []string) ([]opResult, error) {
	ops := make([]operation, 0, len(args))
	for _, arg := range args {
		op, err := parseOperation(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	results := make([]opResult, 0, len(ops))
	for _, op := range ops {
		s, err := sess.lookup(op.Ident)
		if err != nil {
			return nil, err
		}
		ok := op.apply(s, sess.causer)
		if !ok {
			sess.logger.Warn("rejected", "ident", op.Ident, "action", op.Action, "causer", sess.causer.String())
		}
		results = append(results, opResult{
			operation: op,
			OK:        ok,
			Status:    s.Status(),
			sel:       s,
		})
	}
	return results, nil
}

type opResult struct {
	operation `yaml:",inline"`
	OK        bool          `json:"ok" yaml:"ok"`
	Status    status.Status `json:"status" yaml:"status"`

	sel *selectable.Selectable
}
