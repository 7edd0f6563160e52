package domain

import (
	"fmt"
	"strings"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

// GuideTitle is the heading of the verification guide.
const GuideTitle = "Manual verification guide"

// Stage is one analysis stage of the target's pipeline.
type Stage struct {
	Name   string
	View   string
	Verify string
}

// PipelineStages returns the stages the operator inspects, in pipeline order.
func PipelineStages() []Stage {
	return []Stage{
		{
			Name:   "Lexical analysis",
			View:   "the token stream in the lexical analysis view",
			Verify: "token stream correctness: every token has the expected type and value",
		},
		{
			Name:   "Syntax analysis",
			View:   "the AST in the syntax analysis view",
			Verify: "AST shape: nesting, operator precedence and statement order match the source",
		},
		{
			Name:   "Semantic analysis",
			View:   "the symbol table and diagnostics in the semantic analysis view",
			Verify: "the symbol table lists every declared variable, each undeclared variable " +
				"produces a diagnostic, and each use of an uninitialized variable produces a warning",
		},
		{
			Name:   "Code generation",
			View:   "the intermediate code in the code generation view",
			Verify: "three-address intermediate code is generated for every statement",
		},
	}
}

// GuideArgs parameterizes the rendered guide.
type GuideArgs struct {
	Target    m.Path
	CorpusDir m.Path
	Cases     []m.TestCase
}

// GuideRenderer produces the operator checklist.
type GuideRenderer interface {
	Render(args GuideArgs) string
}

type guideRenderer struct{}

// NewGuideRenderer constructs a GuideRenderer.
func NewGuideRenderer() GuideRenderer {
	return &guideRenderer{}
}

// Render returns the full checklist as Markdown. It does not depend on run
// results.
func (g *guideRenderer) Render(args GuideArgs) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", GuideTitle)

	b.WriteString("## 1. Launch the target\n\n")
	fmt.Fprintf(&b, "    %s\n\n", args.Target)

	b.WriteString("## 2. Walk every snippet through the pipeline\n\n")
	b.WriteString("For each file listed below:\n\n")
	b.WriteString("- [ ] a) paste the snippet into the code editor\n")

	for i, stage := range PipelineStages() {
		fmt.Fprintf(&b, "- [ ] %c) inspect %s\n", 'b'+rune(i), stage.View)
	}

	b.WriteString("\n")

	for _, tc := range args.Cases {
		fmt.Fprintf(&b, "- `%s` (%s)", snippetPath(args.CorpusDir, tc), tc.Category)

		if tc.Focus != "" {
			fmt.Fprintf(&b, ": %s", tc.Focus)
		}

		b.WriteString("\n")
	}

	b.WriteString("\n## 3. What to verify per stage\n\n")

	for _, stage := range PipelineStages() {
		fmt.Fprintf(&b, "- **%s**: %s.\n", stage.Name, stage.Verify)
	}

	b.WriteString("\n## 4. Error handling\n\n")
	g.renderFocus(&b, args, m.CategoryErrorHandling,
		"must be rejected with diagnostics. Verify the target handles the invalid input "+
			"gracefully: it reports every semantic error and keeps running without crashing.",
		"Paste any semantically invalid snippet and verify the target handles the invalid input "+
			"gracefully, reporting diagnostics without crashing.")

	b.WriteString("\n## 5. Recursion and performance\n\n")
	g.renderFocus(&b, args, m.CategoryRecursion,
		"exercises recursive calls and nested control flow. Watch how responsive the target "+
			"stays while it analyzes the deeper call structure.",
		"Paste a snippet with a recursive function and watch how responsive the target stays.")

	return b.String()
}

func (g *guideRenderer) renderFocus(b *strings.Builder, args GuideArgs, category m.Category, withCase, withoutCase string) {
	found := false

	for _, tc := range args.Cases {
		if tc.Category != category {
			continue
		}

		found = true

		fmt.Fprintf(b, "- [ ] `%s` %s\n", snippetPath(args.CorpusDir, tc), withCase)
	}

	if !found {
		fmt.Fprintf(b, "- [ ] No %s case in this corpus. %s\n", category, withoutCase)
	}
}

func snippetPath(dir m.Path, tc m.TestCase) string {
	if dir == "" {
		return tc.FileName()
	}

	return strings.TrimSuffix(string(dir), "/") + "/" + tc.FileName()
}
