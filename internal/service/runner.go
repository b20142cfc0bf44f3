package service

import "strings"

// ExpectedPattern is the output every correct coding submission must
// produce. Code correctness is judged against this single pattern, not
// against the challenge's own expected output.
const ExpectedPattern = "*\n* *\n* * *\n* * * *\n* * * * *"

// RunnerErrorOutput is returned for any source that fails classification.
const RunnerErrorOutput = "Error: Code does not seem to generate the expected pattern.\nPlease check your logic and try again.\n\nHint: You need a loop and print statements."

// DefaultCodeTemplate pre-fills the compiler editor.
const DefaultCodeTemplate = "# Write your Python code here\nfor i in range(1, 6):\n    print(\"* \" * i)"

var (
	loopTokens  = []string{"for", "while", "range"}
	printTokens = []string{"print", "cout", "console.log", "System.out"}
)

// CodeRunner classifies submitted source text. It is a stub, not an
// interpreter: nothing is ever executed. Any source containing both a
// loop-like and a print-like token yields the expected pattern; everything
// else yields the fixed hint text.
type CodeRunner struct{}

func NewCodeRunner() *CodeRunner {
	return &CodeRunner{}
}

func (r *CodeRunner) Run(source string) string {
	if containsAny(source, loopTokens) && containsAny(source, printTokens) {
		return ExpectedPattern
	}
	return RunnerErrorOutput
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
