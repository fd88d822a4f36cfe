// Package geom provides the robust 2D primitives the layout planner is
// built on: convex hull, minimal enclosing circle and rectangle, and the
// minimal pairwise distance of a point set.
//
// Points are gonum r2.Vec values. Every function treats its input as
// read-only and returns fresh slices.
package geom
