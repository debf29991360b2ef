// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pype/internal/expr"
	"github.com/mia-platform/pype/internal/namespace"
	"github.com/mia-platform/pype/internal/pipeline"
)

// countingReader fails the test expectations when the input is read before the
// pipeline is ready.
type countingReader struct {
	reader io.Reader
	reads  int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.reads++
	return r.reader.Read(p)
}

func testFs(tb testing.TB) afero.Fs {
	tb.Helper()

	memFs := afero.NewMemMapFs()
	files := map[string]string{
		"/abc.txt":       "abc",
		"/lines.txt":     "first\nsecond\nthird\n",
		"/numbers.txt":   "1\nx\n3\n",
		"/events.jsonl":  "{\"name\": \"a\", \"tags\": [\"x\"]}\n{\"name\": \"b\", \"tags\": []}\n",
		"/windows.txt":   "one\r\ntwo\r\n",
		"/empty.txt":     "",
		"/nested/in.txt": "nested\n",
	}
	for path, content := range files {
		require.NoError(tb, afero.WriteFile(memFs, path, []byte(content), 0o644))
	}

	return memFs
}

func TestPipeCmd(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args                 []string
		stdin                string
		expectedOutput       string
		expectedError        error
		expectedErrorMessage string
		expectedUsage        bool
		expectNoInputRead    bool
	}{
		"no arguments returns no error and print usage": {
			args:          []string{},
			expectedUsage: true,
		},
		"bare functions from the standard input": {
			args:           []string{"upper||len"},
			stdin:          "abc",
			expectedOutput: "3\n",
		},
		"dash reads the standard input": {
			args:           []string{"?", "-"},
			stdin:          "a\nb\n",
			expectedOutput: "a\nb\n\n",
		},
		"input file": {
			args:           []string{"strip||len||str(?) + '\\n'", "/windows.txt"},
			expectedOutput: "3\n3\n\n",
		},
		"empty input writes only the terminator": {
			args:           []string{"upper", "/empty.txt"},
			expectedOutput: "\n",
		},
		"empty command is the identity": {
			args:           []string{"", "/nested/in.txt"},
			expectedOutput: "nested\n\n",
		},
		"unknown namespace aborts before reading": {
			args:                 []string{"--import", "missing", "upper"},
			stdin:                "abc\n",
			expectedError:        namespace.ErrUnknownNamespace,
			expectedErrorMessage: `no namespace named "missing" (available: ` + strings.Join(namespace.Available(), ", ") + ")\n",
			expectNoInputRead:    true,
		},
		"syntax error aborts before reading": {
			args:                 []string{"upper||len(?"},
			stdin:                "abc\n",
			expectedError:        expr.ErrSyntax,
			expectNoInputRead:    true,
			expectedErrorMessage: "",
		},
		"evaluation error keeps the previous output": {
			args:                 []string{`int(?) * 2 || str(?) + "\n"`, "/numbers.txt"},
			expectedOutput:       "2\n",
			expectedError:        pipeline.ErrEvaluation,
			expectedErrorMessage: "line 2: stage 1 (int(value) * 2): type error: invalid literal for int: \"x\\n\"\n",
		},
		"missing input file": {
			args:                 []string{"upper", "/missing.txt"},
			expectedError:        fs.ErrNotExist,
			expectedErrorMessage: "opening input stream: open /missing.txt: file does not exist\n",
		},
		"empty placeholder prints error and usage": {
			args:                 []string{"--placeholder", "", "upper"},
			expectedError:        errInvalidPlaceholder,
			expectedErrorMessage: "invalid placeholder \"\": cannot be empty\n",
			expectedUsage:        true,
		},
		"placeholder containing the separator": {
			args:                 []string{"-p", "a||b", "upper"},
			expectedError:        errInvalidPlaceholder,
			expectedErrorMessage: "invalid placeholder \"a||b\": cannot contain the stage separator \"||\"\n",
			expectedUsage:        true,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			cmd := PipeCmd(testFs(t))
			errBuffer := new(bytes.Buffer)
			outBuffer := new(bytes.Buffer)
			stdin := &countingReader{reader: strings.NewReader(test.stdin)}
			cmd.SetIn(stdin)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)
			cmd.SetUsageTemplate("usage string")
			cmd.SetArgs(test.args)

			err := cmd.ExecuteContext(t.Context())
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				if test.expectedErrorMessage != "" {
					assert.Equal(t, test.expectedErrorMessage, errBuffer.String())
				}
			} else {
				assert.NoError(t, err)
				assert.Empty(t, errBuffer)
			}

			if test.expectNoInputRead {
				assert.Zero(t, stdin.reads)
			}

			switch {
			case test.expectedUsage:
				assert.Equal(t, test.expectedOutput+"usage string", outBuffer.String())
			default:
				assert.Equal(t, test.expectedOutput, outBuffer.String())
			}
		})
	}
}

func TestPipeCmdTooManyArguments(t *testing.T) {
	t.Parallel()

	cmd := PipeCmd(testFs(t))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"upper", "/abc.txt", "/lines.txt"})

	err := cmd.ExecuteContext(t.Context())
	assert.EqualError(t, err, "accepts between 0 and 2 arg(s), received 3")
}

func TestPipeCmdGolden(t *testing.T) {
	t.Parallel()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	testCases := map[string]struct {
		args  []string
		stdin string
	}{
		"identity": {
			args: []string{"?", "/lines.txt"},
		},
		"upper_len": {
			args: []string{"upper||len", "/abc.txt"},
		},
		"json_field": {
			args: []string{"-i", "json", `json.loads || ?["name"] + "\n"`, "/events.jsonl"},
		},
		"json_list": {
			args: []string{"--import=json,lists", `lists.append(json.loads(?)["tags"], "new") || json.dumps || ? + "\n"`, "/events.jsonl"},
		},
		"custom_placeholder": {
			args:  []string{"-p", "_", `_.trim_space().split(",")`},
			stdin: "a,b\nc\n",
		},
		"placeholder_in_literal": {
			args:  []string{`?.trim_space() + "?" + "\n"`},
			stdin: "why\nnot\n",
		},
	}

	for name, test := range testCases {
		cmd := PipeCmd(testFs(t))
		outBuffer := new(bytes.Buffer)
		cmd.SetIn(strings.NewReader(test.stdin))
		cmd.SetOut(outBuffer)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(test.args)

		require.NoError(t, cmd.ExecuteContext(t.Context()), name)
		g.Assert(t, name, outBuffer.Bytes())
	}
}

func TestNamespacesCmdGolden(t *testing.T) {
	t.Parallel()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	cmd := NamespacesCmd()
	outBuffer := new(bytes.Buffer)
	cmd.SetOut(outBuffer)
	cmd.SetArgs([]string{"uuid", "json", "hashlib", "json"})

	require.NoError(t, cmd.ExecuteContext(t.Context()))
	g.Assert(t, "selected", outBuffer.Bytes())
}

func TestNamespacesCmd(t *testing.T) {
	t.Parallel()

	t.Run("every namespace", func(t *testing.T) {
		t.Parallel()

		cmd := NamespacesCmd()
		outBuffer := new(bytes.Buffer)
		cmd.SetOut(outBuffer)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.ExecuteContext(t.Context()))
		lines := strings.Split(strings.TrimSuffix(outBuffer.String(), "\n"), "\n")
		require.Len(t, lines, len(namespace.Available()))
		for idx, name := range namespace.Available() {
			assert.True(t, strings.HasPrefix(lines[idx], name+": "), lines[idx])
		}
	})

	t.Run("unknown namespace", func(t *testing.T) {
		t.Parallel()

		cmd := NamespacesCmd()
		errBuffer := new(bytes.Buffer)
		outBuffer := new(bytes.Buffer)
		cmd.SetOut(outBuffer)
		cmd.SetErr(errBuffer)
		cmd.SetArgs([]string{"json", "missing"})

		err := cmd.ExecuteContext(t.Context())
		assert.ErrorIs(t, err, namespace.ErrUnknownNamespace)
		assert.Empty(t, outBuffer)
		assert.Contains(t, errBuffer.String(), `no namespace named "missing"`)
	})
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args               []string
		toComplete         string
		expectedCompletion []string
	}{
		"partial name": {
			args:       []string{},
			toComplete: "st",
			expectedCompletion: []string{
				"strings\tstring manipulation",
			},
		},
		"already listed names are skipped": {
			args:       []string{"json"},
			toComplete: "j",
		},
		"unknown prefix": {
			args:       []string{},
			toComplete: "x",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			args, directive := namespaceCompletion(nil, test.args, test.toComplete)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.ElementsMatch(t, test.expectedCompletion, args)
		})
	}

	t.Run("pipe command completes the input stream only", func(t *testing.T) {
		t.Parallel()

		_, directive := pipeCompletion(nil, []string{}, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

		_, directive = pipeCompletion(nil, []string{"upper"}, "")
		assert.Equal(t, cobra.ShellCompDirectiveDefault, directive)
	})
}
