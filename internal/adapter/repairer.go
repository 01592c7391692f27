package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
)

// RepairTask is the input of one single-cluster repair.
type RepairTask struct {
	BugID   string
	WorkDir m.Path
	// Budget bounds the repairer's internal steps.
	Budget  int
	Cluster *m.ClusterState
}

// Repairer produces patched code for one cluster. It writes RepairedCode of
// the cluster's fault codes in place and updates the cluster's repair record.
type Repairer interface {
	Repair(ctx context.Context, task RepairTask) error
}

// CommandRepairer delegates patch synthesis to an external agent command.
type CommandRepairer struct {
	command string
	timeout time.Duration
}

// NewCommandRepairer returns a repairer running command per cluster.
func NewCommandRepairer(command string, timeout time.Duration) *CommandRepairer {
	return &CommandRepairer{command: command, timeout: timeout}
}

type repairRequest struct {
	BugID           string              `yaml:"bug_id"`
	WorkDir         m.Path              `yaml:"work_dir"`
	Budget          int                 `yaml:"budget"`
	ClusterID       int                 `yaml:"cluster_id"`
	RelatedTests    []string            `yaml:"related_tests"`
	FailedTests     []m.TestOutcome     `yaml:"failed_tests"`
	FaultCodes      []*m.FaultCodeInfo  `yaml:"fault_codes"`
	KeyTokens       map[m.Path][]string `yaml:"key_tokens,omitempty"`
	InvocationPaths []string            `yaml:"invocation_paths,omitempty"`
	Previous        m.ClusterRepair     `yaml:"previous"`
}

type repairReply struct {
	Patches          map[string]string `yaml:"patches"`
	State            *m.RepairState    `yaml:"state"`
	Count            int               `yaml:"count"`
	History          string            `yaml:"history"`
	FaultAnalysis    string            `yaml:"fault_analysis"`
	PromptTokens     int               `yaml:"prompt_tokens"`
	CompletionTokens int               `yaml:"completion_tokens"`
}

// Repair implements Repairer.
func (r *CommandRepairer) Repair(ctx context.Context, task RepairTask) error {
	c := task.Cluster

	input, err := marshalYAML(repairRequest{
		BugID:           task.BugID,
		WorkDir:         task.WorkDir,
		Budget:          task.Budget,
		ClusterID:       c.ID,
		RelatedTests:    c.RelatedTests,
		FailedTests:     c.FailedTests,
		FaultCodes:      c.FaultCodes,
		KeyTokens:       c.KeyTokens,
		InvocationPaths: c.InvocationPaths,
		Previous:        c.Repair,
	})
	if err != nil {
		return fmt.Errorf("failed to encode repair request: %w", err)
	}

	res, err := runProcess(ctx, processSpec{
		Command: r.command,
		Dir:     string(task.WorkDir),
		Stdin:   input,
		Timeout: r.timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to run repairer: %w", err)
	}

	if res.ExitCode != 0 {
		return fmt.Errorf("repairer exited with status %d: %s", res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}

	var reply repairReply
	if err := yaml.Unmarshal(res.Stdout, &reply); err != nil {
		return fmt.Errorf("failed to decode repair reply: %w", err)
	}

	applied := 0

	for _, code := range c.FaultCodes {
		if patched, ok := reply.Patches[code.Signature]; ok {
			code.RepairedCode = patched
			applied++
		}
	}

	c.Repair.Count += reply.Count
	c.Repair.History = reply.History
	c.Repair.FaultAnalysis = reply.FaultAnalysis
	c.Repair.PromptTokens += reply.PromptTokens
	c.Repair.CompletionTokens += reply.CompletionTokens

	if reply.State != nil {
		c.Repair.State = *reply.State
	}

	slog.Debug("Repairer finished", "bug", task.BugID, "cluster", c.ID, "patches", applied, "state", c.Repair.State)

	return nil
}

// RateLimitedRepairer spaces out calls to an underlying repairer.
type RateLimitedRepairer struct {
	inner   Repairer
	limiter *rate.Limiter
}

// NewRateLimitedRepairer limits inner to perSecond calls. A non-positive
// rate disables limiting.
func NewRateLimitedRepairer(inner Repairer, perSecond float64) *RateLimitedRepairer {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &RateLimitedRepairer{inner: inner, limiter: rate.NewLimiter(limit, 1)}
}

// Repair waits for a token and delegates.
func (r *RateLimitedRepairer) Repair(ctx context.Context, task RepairTask) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for repair slot: %w", err)
	}

	return r.inner.Repair(ctx, task)
}
