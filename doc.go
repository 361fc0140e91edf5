// Package weightcore is a computation engine for interactive skinning-weight
// editing: smoothing, hardening, and additive blending of per-vertex bone
// weights over a mesh's vertex/edge adjacency graph.
//
// 🚀 What is weightcore?
//
//	A host-agnostic library that brings together:
//		• CSR adjacency: inverse-distance-weighted neighbor graphs built once per topology
//		• Strided storage: a fixed 8-slot sparse weight vector per vertex, flat-array backed
//		• Falloff selection: topological (BFS ring) and geometric (quadratic radius) target sets
//		• Operators: Smooth, Harden, Add (with optional auto-normalize) and Smear
//		• Undo: bounded per-group snapshot stack for stroke-level rollback
//		• Spatial queries: a 3D k-d tree for brush range and nearest-vertex lookups
//
// ✨ Why choose weightcore?
//
//   - Host-agnostic – the caller owns the mesh; weightcore owns the math
//   - Cache-friendly – CSR offsets and strided parallel arrays, no per-vertex allocation
//   - Predictable – sentinel errors at the API boundary, documented per-vertex fallbacks
//   - Interactive – every call is synchronous and bounded; one input event, one call
//
// Under the hood, everything is organized under focused subpackages:
//
//	adjacency/ — CSR adjacency builder over an edge list + vertex positions
//	brush/     — Smooth, Harden, Add and Smear weight operators
//	config/    — brush/session defaults with YAML overrides
//	falloff/   — topological and geometric target-set selection
//	kdtree/    — 3D k-d tree range and nearest-vertex queries
//	logging/   — ready-made zap logger with optional file rotation
//	session/   — stroke-level composition: topology, store, undo, dispatch
//	undo/      — bounded snapshot stack with FIFO eviction
//	weights/   — the strided per-vertex weight store (STRIDE = 8)
//
// Quick ASCII example:
//
//	    0───1───2───3
//
//	a line of four vertices; smoothing vertex 1 averages the weights of
//	its neighbors 0 and 2, blended by the brush factor and falloff.
//
// The typical control flow: supply topology once, build the adjacency graph,
// then per input event select targets with a falloff and dispatch an
// operator against the store; read the store back into the host mesh.
//
//	go get github.com/wynnrig/weightcore
package weightcore
