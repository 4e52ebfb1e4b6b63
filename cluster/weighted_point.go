package cluster

// WeightedPoint is one entry of a coreset: either a reference to a row in
// the original point matrix (IsCenter=false) or a reference to a centre
// in a Result's Centres matrix (IsCenter=true), carrying the weight the
// coreset assigns it. Spec section 3, "Weighted coreset point".
type WeightedPoint struct {
	Index    int
	Weight   float64
	IsCenter bool
}
