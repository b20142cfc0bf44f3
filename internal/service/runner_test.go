package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerAcceptsLoopAndPrint(t *testing.T) {
	runner := NewCodeRunner()

	cases := []string{
		"for i in range(1, 6):\n    print(\"* \" * i)",
		"int i = 0; while (i < 5) { cout << \"*\"; i++; }",
		"for (let i = 1; i <= 5; i++) { console.log(\"* \".repeat(i)); }",
		"for (int i = 1; i <= 5; i++) { System.out.println(); }",
	}
	for _, source := range cases {
		assert.Equal(t, ExpectedPattern, runner.Run(source), "source: %s", source)
	}
}

func TestRunnerRejectsIncompleteSource(t *testing.T) {
	runner := NewCodeRunner()

	cases := []string{
		"",
		"print('hello')",
		"for i in range(5): pass",
		"x = 1 + 2",
	}
	for _, source := range cases {
		assert.Equal(t, RunnerErrorOutput, runner.Run(source), "source: %s", source)
	}
}

func TestRunnerMatchesTokensAnywhere(t *testing.T) {
	runner := NewCodeRunner()

	// Token matching is plain substring search; comments count too.
	out := runner.Run("# for reference\nprint('*')")
	assert.Equal(t, ExpectedPattern, out)
}
