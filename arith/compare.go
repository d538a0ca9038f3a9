package arith

// Min returns the smaller of a and b, or a when they are equal.
func Min(a, b Uint) Uint {
	if a.Le(b) {
		return a
	}

	return b
}

// Max returns the larger of a and b, or a when they are equal.
func Max(a, b Uint) Uint {
	if b.Le(a) {
		return a
	}

	return b
}
