// Package angle implements exact angles expressed as rational multiples
// of π, together with the number theory used to split a polygon corner
// into a symmetric fan of sectors.
package angle
