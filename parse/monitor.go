package parse

import "github.com/mataa-market/mataa/core"

// Monitor provides hooks to observe the parse pipeline.
// Implement this interface to track what each stage matched and what text
// it left behind.
type Monitor interface {
	Start(query string)
	StageApplied(stage string, matched string, remaining string)
	Finish(query *core.ParsedQuery)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) StageApplied(_, _, _ string)       {}
func (n *noopMonitor) Finish(_ *core.ParsedQuery)        {}
