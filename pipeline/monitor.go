package pipeline

import (
	"time"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/localize"
)

// Stage names one step of a query.
type Stage string

const (
	StageExtract  Stage = "extract"
	StageEmbed    Stage = "embed"
	StageSearch   Stage = "search"
	StageFilter   Stage = "filter"
	StageLocalize Stage = "localize"
)

// Monitor provides hooks to observe the query process.
// Implementations shared across requests must be safe for concurrent use.
type Monitor interface {
	Start(query string)
	StageDone(stage Stage, elapsed time.Duration, err error)
	AfterProfileExtraction(profile *core.ApplicantProfile)
	AfterRetrieval(candidates []*core.ScoredScheme)
	AfterEligibilityFilter(survivors []*core.ScoredScheme)
	AfterLocalization(report localize.Report)
	Finish(result *core.QueryResult, elapsed time.Duration)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                  {}
func (n *noopMonitor) StageDone(_ Stage, _ time.Duration, _ error)     {}
func (n *noopMonitor) AfterProfileExtraction(_ *core.ApplicantProfile) {}
func (n *noopMonitor) AfterRetrieval(_ []*core.ScoredScheme)           {}
func (n *noopMonitor) AfterEligibilityFilter(_ []*core.ScoredScheme)   {}
func (n *noopMonitor) AfterLocalization(_ localize.Report)             {}
func (n *noopMonitor) Finish(_ *core.QueryResult, _ time.Duration)     {}
