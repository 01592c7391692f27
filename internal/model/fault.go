// Package model defines the data structures shared by the repair pipeline.
package model

import "sort"

// FaultCodeInfo describes one candidate faulty unit (usually a method).
type FaultCodeInfo struct {
	Signature      string   `yaml:"signature"`
	FilePath       Path     `yaml:"file_path"`
	LineBegin      int      `yaml:"line_begin"`
	LineEnd        int      `yaml:"line_end"`
	FaultCode      string   `yaml:"fault_code"`
	SimilarMethods []string `yaml:"similar_methods,omitempty"`
	FaultLineCodes []string `yaml:"fault_line_codes,omitempty"`
	// RepairedCode starts equal to FaultCode and is overwritten by the repairer.
	RepairedCode string `yaml:"repaired_code"`
}

// Changed reports whether the repairer produced code different from the original.
func (f *FaultCodeInfo) Changed() bool {
	return f.RepairedCode != f.FaultCode
}

// OutcomeKind classifies a failing test outcome.
type OutcomeKind string

const (
	// OutcomeFailed is an ordinary assertion or runtime failure.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeTimeout is a test that exceeded its time budget.
	OutcomeTimeout OutcomeKind = "timeout"
	// OutcomeError is a test that could not be executed.
	OutcomeError OutcomeKind = "error"
)

// TestOutcome is the diagnostic record of one failing test.
type TestOutcome struct {
	TestID      string      `yaml:"test"`
	Kind        OutcomeKind `yaml:"kind"`
	FailingInfo string      `yaml:"info"`
	TestCode    string      `yaml:"code,omitempty"`
}

// TestOutcomes maps a test identifier to its outcome. An empty map means every test passed.
type TestOutcomes map[string]TestOutcome

// IDs returns the sorted test identifiers.
func (t TestOutcomes) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Sorted returns outcomes ordered by test identifier.
func (t TestOutcomes) Sorted() []TestOutcome {
	out := make([]TestOutcome, 0, len(t))
	for _, id := range t.IDs() {
		out = append(out, t[id])
	}

	return out
}

// MethodGroup is a set of faulty units that are related to the same failing tests.
type MethodGroup struct {
	Methods []string `yaml:"methods"`
	Tests   []string `yaml:"tests"`
}

// AnalysisResult is what static analysis reports for one fault-localization candidate.
type AnalysisResult struct {
	// Methods maps a faulty-unit signature to its code record.
	Methods map[string]*FaultCodeInfo `yaml:"methods"`
	// Groups relates faulty-unit groups to the failing tests they affect.
	Groups []MethodGroup `yaml:"groups"`
	// Paths maps a faulty-unit signature to its invocation chain from a test.
	Paths map[string]string `yaml:"paths"`
}

// Signatures returns the faulty-unit signatures in a stable order.
func (a *AnalysisResult) Signatures() []string {
	sigs := make([]string, 0, len(a.Methods))
	for sig := range a.Methods {
		sigs = append(sigs, sig)
	}

	sort.Strings(sigs)

	return sigs
}

// FaultCodes returns every fault code record ordered by signature.
func (a *AnalysisResult) FaultCodes() []*FaultCodeInfo {
	codes := make([]*FaultCodeInfo, 0, len(a.Methods))
	for _, sig := range a.Signatures() {
		codes = append(codes, a.Methods[sig])
	}

	return codes
}

// FilePatch is the set of fault code snippets that target one file.
type FilePatch struct {
	FilePath Path
	Snippets []*FaultCodeInfo
}

// GroupByFile groups fault codes per file in first-seen order, skipping duplicate signatures.
func GroupByFile(codes []*FaultCodeInfo) []FilePatch {
	index := make(map[Path]int)
	seen := make(map[string]bool)

	var patches []FilePatch

	for _, code := range codes {
		if code == nil || seen[code.Signature] {
			continue
		}

		seen[code.Signature] = true

		i, ok := index[code.FilePath]
		if !ok {
			i = len(patches)
			index[code.FilePath] = i
			patches = append(patches, FilePatch{FilePath: code.FilePath})
		}

		patches[i].Snippets = append(patches[i].Snippets, code)
	}

	return patches
}

// Files returns the file paths of the patches in order.
func Files(patches []FilePatch) []Path {
	files := make([]Path, 0, len(patches))
	for _, p := range patches {
		files = append(files, p.FilePath)
	}

	return files
}
