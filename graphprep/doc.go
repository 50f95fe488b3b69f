// Package graphprep turns raw node/edge lists into the bounded,
// layout-ready Graph consumed by the rest of forceviz.
//
// What it does:
//
//   - Truncation — when the raw node count exceeds MaxNodes, nodes are
//     ranked by raw degree (descending, stable on input order) and only
//     the top MaxNodes survive; links with a discarded or unknown
//     endpoint are silently dropped.
//   - Bookkeeping — Degree and index-based neighbor sets are recomputed
//     from the retained links only, once, at build time.
//   - Seeding — initial (x, y) positions are drawn uniformly over the
//     layout bounds from a deterministic seeded stream (Seed 0 maps to a
//     fixed default stream, so results are reproducible by default).
//   - Radius — each node caches radius = clamp(degree/3, MinRadius,
//     MaxRadius), a pure function of degree never recomputed per frame.
//
// Why an index arena?
//
// Nodes live in a flat arena and refer to each other by stable integer
// index rather than by pointer. Neighbor sets of indices cannot form
// ownership cycles and serialize cheaply; every downstream component
// (view, focus, forcesim) addresses nodes the same way.
//
// Errors:
//
//	ErrEmptyNodeID     - raw node with an empty identifier.
//	ErrDuplicateNodeID - two raw nodes sharing one identifier.
//	ErrBadMaxNodes     - non-positive working-set limit.
//	ErrBadBounds       - non-positive layout width or height.
//	ErrBadRadiusRange  - MinRadius < 0 or MinRadius > MaxRadius.
//	ErrBadPayload      - undecodable graph document or edge list.
//
// All errors are rejected before any Graph state exists; there is no
// partially built result. A degenerate input (zero nodes, zero links)
// is a valid empty Graph, not a failure.
package graphprep
