package domain

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/LinnaX7/PReMM/internal/adapter"
	m "github.com/LinnaX7/PReMM/internal/model"
)

// ClusterInput is what the builder partitions.
type ClusterInput struct {
	Analysis     *m.AnalysisResult
	FailingTests m.TestOutcomes
	WorkDir      m.Path
	// Clustering false yields one cluster spanning every faulty unit.
	Clustering bool
}

// ClusterBuilder partitions faulty units into repair clusters and merged groups.
type ClusterBuilder interface {
	Build(ctx context.Context, in ClusterInput) ([]*m.ClusterState, []*m.MergedGroup, error)
}

type clusterBuilder struct {
	adapter.AnalysisProvider
	workers int
}

// NewClusterBuilder returns a builder that mines key tokens through analysis
// with at most workers concurrent calls.
func NewClusterBuilder(analysis adapter.AnalysisProvider, workers int) ClusterBuilder {
	if workers < 1 {
		workers = 1
	}

	return &clusterBuilder{AnalysisProvider: analysis, workers: workers}
}

func (b *clusterBuilder) Build(ctx context.Context, in ClusterInput) ([]*m.ClusterState, []*m.MergedGroup, error) {
	var (
		clusters []*m.ClusterState
		groups   []*m.MergedGroup
	)

	if in.Clustering {
		clusters = clustersFromGroups(in.Analysis, in.FailingTests)
		groups = GroupClusters(clusters)
	} else {
		single := singleCluster(in.Analysis, in.FailingTests)
		clusters = []*m.ClusterState{single}
		groups = []*m.MergedGroup{{
			Key:      m.GroupKey(single.RelatedTests),
			Tests:    single.RelatedTests,
			Clusters: clusters,
		}}
	}

	if err := b.mineKeyTokens(ctx, in.WorkDir, clusters); err != nil {
		return nil, nil, err
	}

	slog.Info("Built repair clusters", "clusters", len(clusters), "groups", len(groups), "clustering", in.Clustering)

	return clusters, groups, nil
}

func clustersFromGroups(analysis *m.AnalysisResult, failing m.TestOutcomes) []*m.ClusterState {
	clusters := make([]*m.ClusterState, 0, len(analysis.Groups))

	for i, group := range analysis.Groups {
		tests := m.SortedUnion(group.Tests)

		var codes []*m.FaultCodeInfo

		for _, sig := range group.Methods {
			code, ok := analysis.Methods[sig]
			if !ok {
				slog.Warn("Group references unknown method", "signature", sig)
				continue
			}

			codes = append(codes, code)
		}

		clusters = append(clusters, &m.ClusterState{
			ID:              i + 1,
			RelatedTests:    tests,
			FailedTests:     outcomesFor(failing, tests),
			FaultCodes:      codes,
			InvocationPaths: ReducePaths(pathsOf(analysis, codes)),
			Repair:          m.ClusterRepair{State: m.NotRepaired},
		})
	}

	return clusters
}

func singleCluster(analysis *m.AnalysisResult, failing m.TestOutcomes) *m.ClusterState {
	codes := analysis.FaultCodes()

	return &m.ClusterState{
		ID:              1,
		RelatedTests:    failing.IDs(),
		FailedTests:     failing.Sorted(),
		FaultCodes:      codes,
		InvocationPaths: ReducePaths(pathsOf(analysis, codes)),
		Repair:          m.ClusterRepair{State: m.NotRepaired},
	}
}

// GroupClusters merges clusters that share a related test, directly or
// transitively. Each connected component becomes one group keyed by the
// sorted union of its tests; components with equal keys are merged. Groups
// are ordered by their first member.
func GroupClusters(clusters []*m.ClusterState) []*m.MergedGroup {
	neighbors := make([][]int, len(clusters))

	for i := range clusters {
		for j := i + 1; j < len(clusters); j++ {
			if clusters[i].SharesTestWith(clusters[j]) {
				neighbors[i] = append(neighbors[i], j)
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}

	visited := make([]bool, len(clusters))
	index := make(map[string]*m.MergedGroup)

	var groups []*m.MergedGroup

	for start := range clusters {
		if visited[start] {
			continue
		}

		var component []int

		stack := []int{start}
		visited[start] = true

		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, node)

			for _, next := range neighbors[node] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}

		sort.Ints(component)

		members := make([]*m.ClusterState, 0, len(component))
		testSets := make([][]string, 0, len(component))

		for _, idx := range component {
			members = append(members, clusters[idx])
			testSets = append(testSets, clusters[idx].RelatedTests)
		}

		tests := m.SortedUnion(testSets...)
		key := m.GroupKey(tests)

		if existing, ok := index[key]; ok {
			existing.Clusters = append(existing.Clusters, members...)
			continue
		}

		group := &m.MergedGroup{Key: key, Tests: tests, Clusters: members}
		index[key] = group
		groups = append(groups, group)
	}

	return groups
}

// mineKeyTokens fills each cluster's key tokens per fault file. Mining is
// read-only, so distinct files are mined concurrently. A failed file is
// logged and left without tokens.
func (b *clusterBuilder) mineKeyTokens(ctx context.Context, workDir m.Path, clusters []*m.ClusterState) error {
	var files []m.Path

	seen := make(map[m.Path]bool)

	for _, c := range clusters {
		for _, file := range c.FaultFiles() {
			if !seen[file] {
				seen[file] = true
				files = append(files, file)
			}
		}
	}

	var mu sync.Mutex

	tokens := make(map[m.Path][]string, len(files))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(b.workers)

	for _, file := range files {
		currentFile := file

		group.Go(func() error {
			mined, err := b.MineKeyTokens(gctx, workDir, currentFile)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				slog.Warn("Failed to mine key tokens", "file", currentFile, "error", err)

				return nil
			}

			mu.Lock()
			tokens[currentFile] = mined
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, c := range clusters {
		c.KeyTokens = make(map[m.Path][]string)
		for _, file := range c.FaultFiles() {
			c.KeyTokens[file] = tokens[file]
		}
	}

	return nil
}

func outcomesFor(failing m.TestOutcomes, tests []string) []m.TestOutcome {
	out := make([]m.TestOutcome, 0, len(tests))
	for _, t := range tests {
		outcome, ok := failing[t]
		if !ok {
			outcome = m.TestOutcome{TestID: t, Kind: m.OutcomeFailed}
		}

		out = append(out, outcome)
	}

	return out
}

func pathsOf(analysis *m.AnalysisResult, codes []*m.FaultCodeInfo) []string {
	paths := make([]string, 0, len(codes))
	for _, code := range codes {
		if p, ok := analysis.Paths[code.Signature]; ok {
			paths = append(paths, p)
		}
	}

	return paths
}
