// Package polygon normalizes raw vertex lists into counterclockwise
// polygons whose corners carry exact rational angles.
//
// Construction is all or nothing: FromVertices either returns a polygon
// satisfying every invariant (at least three corners, edges longer than
// MinEdgeLength, interior angles summing to exactly (n-2)π) or an error
// wrapping one of the sentinel errors of this package.
package polygon
