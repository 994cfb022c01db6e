package testcase

import (
	"fmt"
	"strings"
)

// TestType is the category prefix of a definition file name.
type TestType string

const (
	TypeSmoke      TestType = "smoke"
	TypeRegression TestType = "regression"
	TypeFunctional TestType = "functional"
)

// TestTypes returns the allowed test types in menu order.
func TestTypes() []TestType {
	return []TestType{TypeSmoke, TypeRegression, TypeFunctional}
}

// IsValid reports whether t is an allowed test type.
func (t TestType) IsValid() bool {
	switch t {
	case TypeSmoke, TypeRegression, TypeFunctional:
		return true
	default:
		return false
	}
}

func (t TestType) String() string {
	return string(t)
}

// ParseTestType validates a user-supplied test type. Matching is exact so that
// file names stay predictable.
func ParseTestType(s string) (TestType, error) {
	t := TestType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid test type %q: use 'smoke', 'regression' or 'functional'", s)
	}
	return t, nil
}

// DefinitionBaseName returns "<type>" or "<type>-<name>" when name is set.
func DefinitionBaseName(t TestType, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return string(t)
	}
	return string(t) + "-" + name
}
