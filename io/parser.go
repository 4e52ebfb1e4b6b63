// Package io models external input sources as the "Parser" capability
// named in spec section 9: every concrete format implements one method
// that turns a file on disk into a dense point matrix ready for
// cluster.Engine.Cluster. Parsing itself sits outside the coreset core
// (spec section 1's scope), the same way the teacher's io/csv package
// sits outside dataframe's own model.
package io

import "gonum.org/v1/gonum/mat"

// Parser turns a file at path into a dense N-by-D point matrix.
type Parser interface {
	Parse(path string) (*mat.Dense, error)
}
