// Package passindex resolves and runs the preprocessing pipeline behind the
// pass index, a per-traversal measure of phase precession in grid and place
// cells.
//
// A caller supplies a [Recording] (position timestamps and samples, spike
// timestamps, optionally an LFP) and a sparse [Options] value. [Resolve]
// turns every auto parameter into a concrete value or strategy for the
// chosen method and returns a frozen [Config]; [Prepare] runs it.
//
// # Quick Start
//
//	rec := passindex.Recording{PosTS: posTS, Pos: pos, SpkTS: spkTS, LFPTS: lfpTS, LFPSig: lfp}
//	res, err := passindex.Run(rec, passindex.GridOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Table, res.FieldSignal, res.LFPPhase feed the pass-index regression.
//
// # Parameters
//
// Each resolvable parameter is a tagged value: auto, literal or strategy.
// The zero value means "not supplied" and behaves like auto; such
// parameters are reported in [Config.UsingDefaults]. Explicit values are
// never overridden.
//
//   - binside: 2 * dimensionality of the positions.
//   - smth_width: 3 * binside.
//   - filter_band: [GridBand] for grid cells. For place cells the rate map
//     is estimated, bins above 10% of its peak are summed into a volume,
//     and the band is [PlaceBand] of the radius of the n-ball with that
//     volume.
//   - lfp_filter: 6-10 Hz.
//   - sample_along: [ArcLength].
//   - field_index: [RateMapFieldIndex].
//
// Under [MethodCustom] nothing is derived. A [CustomMethod] function may
// fill in parameters before resolution; whatever is still auto afterwards
// is an [ErrInvalidArgument].
//
// # Filters
//
// Numeric bands become 3rd-order Butterworth band-pass filters applied
// forward and backward. The field-index filter samples at the reciprocal of
// the mean table spacing, the LFP filter at the reciprocal of the modal
// timestamp spacing, and the LFP phase is the angle of the FFT analytic
// signal.
//
// # Errors
//
// Errors match [ErrInvalidArgument], [ErrInsufficientData] or
// [ErrExternalComputation] with errors.Is. Numeric failures carry a
// [*ComputationError] with the band and sampling rate involved.
package passindex
