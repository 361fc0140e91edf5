package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wynnrig/weightcore/adjacency"
	"github.com/wynnrig/weightcore/config"
	"github.com/wynnrig/weightcore/kdtree"
	"github.com/wynnrig/weightcore/undo"
	"github.com/wynnrig/weightcore/weights"
)

// Session owns the per-mesh editing state: the adjacency graph and spatial
// index derived from the topology, the weight store, and the undo stack.
// It is the unit a host binds to one mesh for the duration of an editing
// mode; it is not safe for concurrent use.
type Session struct {
	graph *adjacency.Graph
	tree  *kdtree.Tree
	store *weights.Store
	undo  *undo.Stack

	cfg config.Brush
	log *zap.Logger
}

// New builds a session from the mesh topology: vertexCount vertices,
// flattened directed edge pairs and xyz positions. The weight store starts
// empty; call LoadWeights to seed it.
//
// Returns ErrOptionViolation for bad options, or the adjacency/kdtree build
// error for malformed topology.
func New(vertexCount int, edges []int32, positions []float32, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, o.err)
	}

	g, err := adjacency.Build(vertexCount, edges, positions)
	if err != nil {
		return nil, err
	}
	tree, err := kdtree.Build(positions)
	if err != nil {
		return nil, err
	}
	store, err := weights.New(vertexCount)
	if err != nil {
		return nil, err
	}

	s := &Session{
		graph: g,
		tree:  tree,
		store: store,
		undo:  undo.NewStack(o.cfg.UndoDepth),
		cfg:   o.cfg,
		log:   o.logger,
	}
	s.log.Info("session ready",
		zap.Int("vertices", vertexCount),
		zap.Int("edge_entries", g.EdgeEntryCount()),
		zap.Int("undo_depth", o.cfg.UndoDepth),
	)

	return s, nil
}

// Graph returns the adjacency graph for the current topology.
func (s *Session) Graph() *adjacency.Graph { return s.graph }

// Tree returns the spatial index for the current topology.
func (s *Session) Tree() *kdtree.Tree { return s.tree }

// Store returns the live weight store.
func (s *Session) Store() *weights.Store { return s.store }

// Config returns the active brush settings.
func (s *Session) Config() config.Brush { return s.cfg }

// RefreshTopology rebuilds the adjacency graph and spatial index after the
// mesh deforms or its connectivity changes. The vertex count must match the
// existing weight store — weights are keyed by vertex index, so a count
// change invalidates them; returns ErrVertexMismatch in that case and the
// session keeps its previous topology.
func (s *Session) RefreshTopology(vertexCount int, edges []int32, positions []float32) error {
	if vertexCount != s.store.VertexCount() {
		return fmt.Errorf("%w: store has %d vertices, topology has %d",
			ErrVertexMismatch, s.store.VertexCount(), vertexCount)
	}

	g, err := adjacency.Build(vertexCount, edges, positions)
	if err != nil {
		return err
	}
	tree, err := kdtree.Build(positions)
	if err != nil {
		return err
	}

	s.graph = g
	s.tree = tree
	s.log.Debug("topology refreshed",
		zap.Int("vertices", vertexCount),
		zap.Int("edge_entries", g.EdgeEntryCount()),
	)

	return nil
}

// LoadWeights replaces the weight store contents with one group-weight map
// per vertex, in vertex order. The slice length must match the session's
// vertex count.
func (s *Session) LoadWeights(perVertex []map[int32]float32) error {
	if len(perVertex) != s.store.VertexCount() {
		return fmt.Errorf("%w: store has %d vertices, payload has %d",
			ErrVertexMismatch, s.store.VertexCount(), len(perVertex))
	}

	before := s.store.Truncations()
	store, err := weights.NewFromMaps(perVertex)
	if err != nil {
		return err
	}
	s.store = store

	if culled := store.Truncations(); culled > 0 {
		s.log.Warn("influences truncated on load",
			zap.Uint64("culled", culled),
			zap.Uint64("previous", before),
		)
	}

	return nil
}

// SourceWeight samples the weight of group near point, for seeding a smear
// stroke. SampleNearest reads the closest vertex; SampleAverage averages
// every vertex within radius (falling back to the nearest vertex when the
// radius is empty). ok is false only when the mesh has no vertices.
func (s *Session) SourceWeight(point [3]float32, radius float32, group int32, method SampleMethod) (w float32, ok bool) {
	if method == SampleAverage {
		var sum float32
		count := 0
		s.tree.FindRange(point, radius, func(vertex int32, _ float32) {
			sum += s.store.Weight(int(vertex), group)
			count++
		})
		if count > 0 {
			return sum / float32(count), true
		}
	}

	vertex, _, found := s.tree.FindNearest(point)
	if !found {
		return 0, false
	}

	return s.store.Weight(int(vertex), group), true
}

// BeginStroke snapshots the given groups across the whole mesh and pushes
// the snapshot onto the undo stack. Call it once per stroke, before the
// first dab.
func (s *Session) BeginStroke(groups []int32) {
	s.undo.Push(undo.Capture(s.store, groups))
	s.log.Debug("stroke snapshot",
		zap.Int32s("groups", groups),
		zap.Int("undo_len", s.undo.Len()),
	)
}

// Undo pops the most recent snapshot and restores it onto the store.
// Returns false when the stack is empty.
func (s *Session) Undo() bool {
	applied := s.undo.PopAndApply(s.store)
	s.log.Debug("undo", zap.Bool("applied", applied), zap.Int("undo_len", s.undo.Len()))

	return applied
}

// UndoDepth returns the number of snapshots currently held.
func (s *Session) UndoDepth() int { return s.undo.Len() }
