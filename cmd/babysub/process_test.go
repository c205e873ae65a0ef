// SPDX-License-Identifier: Apache-2.0
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysub/internal/subsume"
)

// Each scenario pins the hash-signature comment of the signed output to a
// golden value.
var goldenCases = []struct {
	name      string
	input     string
	signature string
	clauses   int
}{
	{"empty", "p cnf 0 0\n", "0", 0},
	{"binbin1", "p cnf 2 2\n1 2 0\n1 2 0\n", "13730316899549720340", 1},
	{"binbin2", "p cnf 2 2\n1 2 0\n2 1 0\n", "13730316899549720340", 1},
	{"inconsistent1", "p cnf 1 2\n1 0\n-1 0\n", "6302962180752638144", 2},
	{"inconsistent2", "p cnf 0 1\n0\n", "71876167", 1},
	{"trivial1", "p cnf 1 1\n1 -1 0\n", "0", 0},
	{"trivial2", "p cnf 2 2\n1 -1 0\n1 1 2 0\n", "13730316899549720340", 1},
}

func runPipeline(t *testing.T, input string, cfg config) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, process(cfg, strings.NewReader(input), &out))
	return out.String()
}

func signatureLine(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "c hash-signature: ") {
			return strings.TrimPrefix(line, "c hash-signature: ")
		}
	}
	t.Fatalf("no hash-signature line in output:\n%s", output)
	return ""
}

func TestGoldenSignatures(t *testing.T) {
	for _, c := range goldenCases {
		for _, mode := range []subsume.Mode{subsume.Forward, subsume.Backward} {
			t.Run(c.name+"/"+mode.String(), func(t *testing.T) {
				cfg := config{
					inputPath:  "<stdin>",
					outputPath: "<stdout>",
					verbosity:  -1,
					sign:       true,
					mode:       mode,
				}
				output := runPipeline(t, c.input, cfg)
				assert.Equal(t, c.signature, signatureLine(t, output))
			})
		}
	}
}

func TestSurvivingClauseCounts(t *testing.T) {
	for _, c := range goldenCases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config{
				inputPath:  "<stdin>",
				outputPath: "<stdout>",
				verbosity:  -1,
				mode:       subsume.Backward,
			}
			output := runPipeline(t, c.input, cfg)
			lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
			require.NotEmpty(t, lines)
			assert.Contains(t, lines[0], "p cnf")
			assert.Len(t, lines[1:], c.clauses)
		})
	}
}

func TestQuietStillEmitsPayload(t *testing.T) {
	cfg := config{
		inputPath:  "<stdin>",
		outputPath: "<stdout>",
		verbosity:  -1,
		sign:       true,
		mode:       subsume.Backward,
	}
	output := runPipeline(t, "p cnf 2 1\n1 2 0\n", cfg)
	assert.Equal(t, "p cnf 2 1\nc hash-signature: 13730316899549720340\n1 2 0\n", output)
}

func TestCommentChatterAtDefaultVerbosity(t *testing.T) {
	cfg := config{
		inputPath:  "<stdin>",
		outputPath: "<stdout>",
		verbosity:  0,
		mode:       subsume.Backward,
	}
	output := runPipeline(t, "p cnf 2 1\n1 2 0\n", cfg)
	assert.Contains(t, output, "c BabySub Subsumption Preprocessor\n")
	assert.Contains(t, output, "c reading from '<stdin>'\n")
	assert.Contains(t, output, "c parsed 'p cnf 2 1' header\n")
	assert.Contains(t, output, "c checked:")
	assert.Contains(t, output, "c subsumed:")
	assert.Contains(t, output, "c process-time:")
	assert.Contains(t, output, "p cnf 2 1\n1 2 0\n")
}

func TestParseErrorSurfacesPathAndLine(t *testing.T) {
	cfg := config{
		inputPath:  "broken.cnf",
		outputPath: "<stdout>",
		verbosity:  -1,
		mode:       subsume.Backward,
	}
	var out bytes.Buffer
	err := process(cfg, strings.NewReader("p cnf 2 1\n1 junk 0\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.cnf")
	assert.Contains(t, err.Error(), "line 2")
}
