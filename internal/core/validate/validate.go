// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/probar/internal/core/testcase"
)

// TestType validates a test type name.
func TestType(s string) error {
	_, err := testcase.ParseTestType(s)
	return err
}

// FileName validates the optional name part of a definition file. It may
// be empty but must stay inside the definitions directory.
func FileName(name string) error {
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("name %q must not contain '..'", name)
	}
	return nil
}

// TestTypeField returns a criterio validator for test types.
func TestTypeField(field, s string) error {
	return criterio.Run(field, s, TestType)
}

// FileNameField returns a criterio validator for definition names.
func FileNameField(field, name string) error {
	return criterio.Run(field, name, FileName)
}
