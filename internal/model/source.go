// Package model defines the data structures shared by the harness layers.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Category classifies what a test case exercises in the target.
type Category string

const (
	// CategoryAssignment covers plain assignments between variables.
	CategoryAssignment Category = "assignment"
	// CategoryArithmetic covers the four arithmetic operators.
	CategoryArithmetic Category = "arithmetic"
	// CategoryDeclaration covers typed declarations with and without initializers.
	CategoryDeclaration Category = "declaration"
	// CategoryExpression covers compound and conditional expressions.
	CategoryExpression Category = "expression"
	// CategoryErrorHandling covers semantically invalid input the target must
	// diagnose without crashing.
	CategoryErrorHandling Category = "error-handling"
	// CategoryRecursion covers functions, control flow and recursive calls.
	CategoryRecursion Category = "control-flow/recursion"
)

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryAssignment,
		CategoryArithmetic,
		CategoryDeclaration,
		CategoryExpression,
		CategoryErrorHandling,
		CategoryRecursion,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory converts a manifest value into a Category.
func ParseCategory(value string) (Category, error) {
	c := Category(value)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", value)
	}

	return c, nil
}

// DefaultExtension is the file extension used for snippet files.
const DefaultExtension = ".c"

// TestCase is one snippet of the corpus. Values are never mutated after the
// corpus is loaded.
type TestCase struct {
	ID         string
	Category   Category
	Focus      string
	SourceText string
	Extension  string
}

// FileName returns the name the snippet is materialized under.
func (tc TestCase) FileName() string {
	ext := tc.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	return tc.ID + ext
}
