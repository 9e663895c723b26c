package passindex

// Parameter names, as reported by Config.UsingDefaults.
const (
	ParamMethod      = "method"
	ParamBinSide     = "binside"
	ParamSmoothWidth = "smth_width"
	ParamFieldIndex  = "field_index"
	ParamSampleAlong = "sample_along"
	ParamFilterBand  = "filter_band"
	ParamLFPFilter   = "lfp_filter"
	ParamSlopeBounds = "slope_bnds"
)

// Auto-derivation factors for grid and place methods
const (
	binSidePerDimension = 2.0 // binside = 2 * dim(pos)
	smoothPerBinSide    = 3.0 // smth_width = 3 * binside
)

// Grid-cell spatial band: periodicity constants in position units.
const (
	gridLowPeriod  = 2 * 170.0 // low edge 1/(2*170)
	gridHighPeriod = 26.7      // high edge 8/26.7
	gridHighCycles = 8.0
)

// Place-cell band derivation
const (
	// placeFieldThreshold is the fraction of peak rate a bin must exceed to
	// count towards the field volume.
	placeFieldThreshold = 0.10

	// Band edges as multiples of the equivalent field radius r:
	// [1/(6r), 3/r].
	placeLowRadii   = 6.0
	placeHighCycles = 3.0
)

// LFP defaults (Hz)
const (
	defaultLFPLow  = 6.0
	defaultLFPHigh = 10.0
)

// slopeBoundsLen is the length of the slope_bnds pair.
const slopeBoundsLen = 2
