package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/LinnaX7/PReMM/internal/model"
)

const fooSource = `package org.example;
public class Foo {
    int bar() { return 1; }
    int baz() { return 2; }
}
`

const analyzeReply = `methods:
  Foo#bar():
    file_path: org/example/Foo.java
    line_begin: 3
    line_end: 3
    similar_methods: [Foo#baz()]
groups:
  - methods: [Foo#bar()]
    tests: [FooTest::testBar]
paths:
  Foo#bar(): FooTest::testBar->Foo#bar()
`

// replyWorker records its request and answers with reply.yaml from the working directory.
const replyWorker = "cat > request.yaml; cat reply.yaml"

func newAnalyzerWorkDir(t *testing.T, reply string) string {
	t.Helper()

	dir := t.TempDir()
	writeWorkFile(t, dir, "src/org/example/Foo.java", fooSource)
	writeWorkFile(t, dir, "reply.yaml", reply)

	return dir
}

func TestProcessAnalyzer_Analyze(t *testing.T) {
	dir := newAnalyzerWorkDir(t, analyzeReply)
	analyzer := NewProcessAnalyzer(replyWorker, 10*time.Second)

	result, err := analyzer.Analyze(context.Background(), AnalysisRequest{
		Dataset:           "defects4j",
		BugID:             "Chart-1",
		Mode:              "top-1",
		WorkDir:           m.Path(dir),
		SourceDir:         "src",
		FailingTests:      []string{"FooTest::testBar"},
		SuspiciousMethods: []string{"Foo#bar()"},
	})
	require.NoError(t, err)

	require.Contains(t, result.Methods, "Foo#bar()")
	info := result.Methods["Foo#bar()"]
	assert.Equal(t, m.Path("src/org/example/Foo.java"), info.FilePath)
	assert.Equal(t, "    int bar() { return 1; }\n", info.FaultCode)
	assert.Equal(t, info.FaultCode, info.RepairedCode)
	assert.Equal(t, []string{"Foo#baz()"}, info.SimilarMethods)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, []string{"FooTest::testBar"}, result.Groups[0].Tests)
	assert.Equal(t, "FooTest::testBar->Foo#bar()", result.Paths["Foo#bar()"])

	request := readWorkFile(t, dir, "request.yaml")
	assert.Contains(t, request, "mode: analyze")
	assert.Contains(t, request, "bug_id: Chart-1")
	assert.Contains(t, request, "localization: top-1")
}

func TestProcessAnalyzer_AnalyzeRejectsBadLineRange(t *testing.T) {
	dir := newAnalyzerWorkDir(t, `methods:
  Foo#bar():
    file_path: org/example/Foo.java
    line_begin: 3
    line_end: 30
`)
	analyzer := NewProcessAnalyzer(replyWorker, 10*time.Second)

	_, err := analyzer.Analyze(context.Background(), AnalysisRequest{WorkDir: m.Path(dir), SourceDir: "src"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fault code of Foo#bar()")
}

func TestProcessAnalyzer_MineKeyTokens(t *testing.T) {
	dir := newAnalyzerWorkDir(t, "tokens: [Foo, bar, baz]\n")
	analyzer := NewProcessAnalyzer(replyWorker, 10*time.Second)

	tokens, err := analyzer.MineKeyTokens(context.Background(), m.Path(dir), "src/org/example/Foo.java")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "bar", "baz"}, tokens)

	request := readWorkFile(t, dir, "request.yaml")
	assert.Contains(t, request, "mode: key_tokens")
	assert.Contains(t, request, "src/org/example/Foo.java")
}

func TestProcessAnalyzer_RelatedTests(t *testing.T) {
	dir := newAnalyzerWorkDir(t, "tests: [FooTest::testBar]\n")
	analyzer := NewProcessAnalyzer(replyWorker, 10*time.Second)

	tests, err := analyzer.RelatedTests(context.Background(), RelatedRequest{
		WorkDir:      m.Path(dir),
		FailingTests: []string{"FooTest::testBar", "OtherTest::testX"},
		FaultFiles:   []m.Path{"src/org/example/Foo.java"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"FooTest::testBar"}, tests)
	assert.Contains(t, readWorkFile(t, dir, "request.yaml"), "mode: related_tests")
}

func TestProcessAnalyzer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "reported error", command: "cat > /dev/null; echo 'error: unknown bug'", want: "analysis worker reported: unknown bug"},
		{name: "non-zero exit", command: "cat > /dev/null; echo 'no JDK' >&2; exit 3", want: "analysis worker exited with status 3: no JDK"},
		{name: "malformed reply", command: "cat > /dev/null; echo 'tokens: [unterminated'", want: "failed to decode analysis reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewProcessAnalyzer(tt.command, 10*time.Second)

			_, err := analyzer.MineKeyTokens(context.Background(), m.Path(t.TempDir()), "Foo.java")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcessAnalyzer_Timeout(t *testing.T) {
	analyzer := NewProcessAnalyzer("sleep 10", 100*time.Millisecond)

	started := time.Now()
	_, err := analyzer.MineKeyTokens(context.Background(), m.Path(t.TempDir()), "Foo.java")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisTimeout)
	assert.Less(t, time.Since(started), 5*time.Second)
}

func TestAnalysisRequest_CacheKey(t *testing.T) {
	req := AnalysisRequest{Dataset: "defects4j", BugID: "Chart-1", Mode: "top-2"}
	assert.Equal(t, "defects4j/Chart-1/top-2", req.CacheKey())
}

func TestReadLineRange(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "Calculator.java", calculatorSource)
	path := filepath.Join(dir, "Calculator.java")

	code, err := readLineRange(path, 8, 9)
	require.NoError(t, err)
	assert.Equal(t, "    }\n}\n", code)

	_, err = readLineRange(path, 8, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line range 8-10 outside of 9 lines")
}
