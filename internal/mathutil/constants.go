package mathutil

// Numerical tolerances
const (
	// Roundoff is the relative error, a few ulps, that a difference of
	// rounded terms may carry. A discriminant within Roundoff of the terms
	// it cancels is treated as zero by the closed-form root finders.
	Roundoff = 8 * 0x1p-52
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
