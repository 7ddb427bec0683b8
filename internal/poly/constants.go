package poly

// MaxRoots is the largest number of real roots any solver reports.
const MaxRoots = 4

// Multiplicities
const (
	simpleRoot = 1
	doubleRoot = 2
	tripleRoot = 3
)

// Cardano and Ferrari reduction constants
const (
	quadricHalf = 2.0 // x² + 2px + q normal form

	cubicThird       = 3.0  // x = y - A/3
	cubicTwentySeven = 27.0 // 2A³/27 term of the depressed cubic
	cubicTwoPiThirds = 3.0  // phi ± π/3 for the trigonometric roots

	quarticQuarter = 4.0 // x = y - A/4
)
