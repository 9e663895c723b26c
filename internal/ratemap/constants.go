package ratemap

const (
	// kernelRadiusSigmas is how many standard deviations the Gaussian
	// smoothing kernel extends on each side of its centre.
	kernelRadiusSigmas = 3.0

	// maxBins bounds the total number of bins in a map.
	maxBins = 1 << 24

	// minOccupancy is the smoothed occupancy (seconds) below which a bin is
	// treated as unvisited.
	minOccupancy = 1e-9
)
