// Package policy maps roles to the actions they may perform using a casbin
// RBAC model embedded in the binary.
package policy

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/thejurists/site-api/internal/core/domain"
)

//go:embed model.conf
var modelConf string

//go:embed policy.csv
var defaultPolicy string

// Enforcer answers role/action questions.
type Enforcer struct {
	e *casbin.SyncedEnforcer
}

// New builds an Enforcer from the embedded model and policy.
func New() (*Enforcer, error) {
	return NewFromPolicy(defaultPolicy)
}

// NewFromPolicy builds an Enforcer from the embedded model and the given
// policy lines.
func NewFromPolicy(policy string) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policy))
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}
	return &Enforcer{e: e}, nil
}

// Allowed reports whether role may perform action.
func (p *Enforcer) Allowed(role domain.Role, action domain.Action) (bool, error) {
	ok, err := p.e.Enforce(string(role), string(action))
	if err != nil {
		return false, fmt.Errorf("enforce %s on %s: %w", role, action, err)
	}
	return ok, nil
}
