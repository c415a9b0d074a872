package seq

// TopTwo is only exported for testing.
func TopTwo(counts *[256]int32) (byte, int32, int32) { return topTwo(counts) }
