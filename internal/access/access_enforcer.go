package access

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

// rolePolicies is the fixed permission table. Roles are static, so the
// policy set is loaded once at startup instead of per request.
var rolePolicies = [][3]string{
	{"SUPER_USER", "organization", "*"},
	{"SUPER_USER", "admin", "*"},
	{"SUPER_USER", "credential", "reset"},
	{"SUPER_USER", "metrics-platform", "read"},

	{"ADMIN", "organization", "read"},
	{"ADMIN", "user", "*"},
	{"ADMIN", "team", "*"},
	{"ADMIN", "task", "*"},
	{"ADMIN", "attendance", "read"},
	{"ADMIN", "metrics", "read"},
	{"ADMIN", "credential", "reset"},
	{"ADMIN", "profile", "update"},

	{"EXECUTIVE", "metrics", "read"},
	{"EXECUTIVE", "attendance", "read"},
	{"EXECUTIVE", "task", "read"},
	{"EXECUTIVE", "profile", "update"},

	{"MEMBER", "task", "read"},
	{"MEMBER", "profile", "update"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range rolePolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
