// SPDX-License-Identifier: MIT

// Package session implements the interactive reassignment loop: the user
// moves nodes between communities and sees the modularity after every change.
//
// A Session owns its partition (a copy of the one it was created with) and
// reads, but never mutates, its graph. All methods are safe for concurrent use.
package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/core"
	"github.com/katalvlaran/modularity/internal/logging"
	"github.com/katalvlaran/modularity/internal/metrics"
)

// Session is an interactive view over one graph and a mutable partition.
type Session struct {
	id          string
	prompt      bool
	mu          sync.Mutex
	graph       *core.WeightedGraph[string]
	partition   community.Partition[string, int]
	communities int
	logger      *log.Logger
	recorder    *metrics.Recorder
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) { s.logger = l }
}

// WithRecorder publishes evaluations and reassignments to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithCommunities sets how many labels "cycle" rotates through. Values below
// 1 are treated as 1.
func WithCommunities(k int) Option {
	return func(s *Session) {
		if k < 1 {
			k = 1
		}
		s.communities = k
	}
}

// WithPrompt toggles the Prompt written before each line read by Run. It is
// on by default; turn it off when input is not a terminal.
func WithPrompt(on bool) Option {
	return func(s *Session) { s.prompt = on }
}

// DefaultCommunities is the cycle width when WithCommunities is not given.
const DefaultCommunities = 3

// New starts a session over g with a copy of p.
func New(g *core.WeightedGraph[string], p community.Partition[string, int], opts ...Option) *Session {
	s := &Session{
		id:          uuid.NewString(),
		prompt:      true,
		graph:       g,
		partition:   p.Clone(),
		communities: DefaultCommunities,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	s.recorder.SetGraphSize(g.NodeCount(), g.EdgeCount())

	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Score evaluates the current partition.
func (s *Session) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.evaluate()
}

// Partition returns a copy of the current partition.
func (s *Session) Partition() community.Partition[string, int] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.partition.Clone()
}

// Breakdown returns the per-community decomposition of the current partition.
func (s *Session) Breakdown() community.Result[string, int] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return community.Breakdown(s.graph, s.partition)
}

// Cycle moves node to the next community and returns its new label and the
// resulting modularity.
func (s *Session) Cycle(node string) (int, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.HasNode(node) {
		return 0, 0, unknownNode(node)
	}
	c := community.CycleCommunity(s.partition, node, s.communities)
	s.recorder.IncReassignment(cmdCycle)
	s.logger.Info("reassigned", "node", node, "community", c)

	return c, s.evaluate(), nil
}

// Set assigns node to community c and returns the resulting modularity.
func (s *Session) Set(node string, c int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.HasNode(node) {
		return 0, unknownNode(node)
	}
	s.partition.Assign(node, c)
	s.recorder.IncReassignment(cmdSet)
	s.logger.Info("reassigned", "node", node, "community", c)

	return s.evaluate(), nil
}

// Unset removes node from its community and returns the resulting modularity.
func (s *Session) Unset(node string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.HasNode(node) {
		return 0, unknownNode(node)
	}
	s.partition.Unassign(node)
	s.recorder.IncReassignment(cmdUnset)
	s.logger.Info("unassigned", "node", node)

	return s.evaluate(), nil
}

// evaluate scores the partition; s.mu must be held.
func (s *Session) evaluate() float64 {
	start := time.Now()
	q := community.Evaluate(s.graph, s.partition)
	elapsed := time.Since(start)

	s.recorder.ObserveEvaluation(q, elapsed)
	s.logger.Debug("evaluated", "modularity", q, "duration", elapsed)

	return q
}
