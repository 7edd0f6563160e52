package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func TestGuideRenderer_Render(t *testing.T) {
	guide := domain.NewGuideRenderer().Render(domain.GuideArgs{
		Target:    "./CompilerFrontend",
		CorpusDir: "test_cases",
		Cases:     defaultCases(t),
	})

	assert.True(t, strings.HasPrefix(guide, "# "+domain.GuideTitle))
	assert.Contains(t, guide, "    ./CompilerFrontend")
	assert.Contains(t, guide, "paste the snippet into the code editor")

	for _, name := range []string{"arithmetic.c", "complex.c", "errors.c", "expressions.c", "simple_assignment.c", "variables.c"} {
		assert.Contains(t, guide, "`test_cases/"+name+"`")
	}

	for _, stage := range domain.PipelineStages() {
		assert.Contains(t, guide, stage.Name)
	}

	sections := []string{"## 1.", "## 2.", "## 3.", "## 4. Error handling", "## 5. Recursion and performance"}
	last := -1
	for _, section := range sections {
		idx := strings.Index(guide, section)
		assert.Greater(t, idx, last, section)
		last = idx
	}

	errorSection := guide[strings.Index(guide, "## 4."):strings.Index(guide, "## 5.")]
	assert.Contains(t, errorSection, "test_cases/errors.c")
	assert.Contains(t, errorSection, "gracefully")

	recursionSection := guide[strings.Index(guide, "## 5."):]
	assert.Contains(t, recursionSection, "test_cases/complex.c")
}

func TestGuideRenderer_StagesInPipelineOrder(t *testing.T) {
	stages := domain.PipelineStages()

	var names []string
	for _, stage := range stages {
		names = append(names, stage.Name)
	}

	assert.Equal(t, []string{"Lexical analysis", "Syntax analysis", "Semantic analysis", "Code generation"}, names)
}

func TestGuideRenderer_IsDeterministic(t *testing.T) {
	args := domain.GuideArgs{Target: "./CompilerFrontend", CorpusDir: "test_cases", Cases: defaultCases(t)}
	renderer := domain.NewGuideRenderer()

	assert.Equal(t, renderer.Render(args), renderer.Render(args))
}

func TestGuideRenderer_WithoutFocusCases(t *testing.T) {
	guide := domain.NewGuideRenderer().Render(domain.GuideArgs{
		Target:    "/opt/cf/CompilerFrontend",
		CorpusDir: "cases/",
		Cases: []m.TestCase{
			{ID: "arithmetic", Category: m.CategoryArithmetic},
		},
	})

	assert.Contains(t, guide, "`cases/arithmetic.c`")
	assert.Contains(t, guide, "No error-handling case in this corpus.")
	assert.Contains(t, guide, "gracefully")
	assert.Contains(t, guide, "No control-flow/recursion case in this corpus.")
}
