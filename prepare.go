package passindex

import "fmt"

// Result holds the series produced by running a resolved configuration.
type Result struct {
	Config *Config

	// FieldIndex has one value per position sample.
	FieldIndex []float64

	// Table is the resampling table produced by Config.SampleAlong.
	Table Table

	// FieldSignal is the band-passed Value column of Table.
	FieldSignal []float64

	// LFPFiltered and LFPPhase are nil when the recording has no LFP.
	LFPFiltered []float64
	LFPPhase    []float64
}

// Prepare runs cfg on rec: it computes the field index, resamples it,
// filters the resampled series and, when rec carries an LFP, filters the
// LFP and extracts its phase.
func Prepare(rec Recording, cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is nil", ErrInvalidArgument)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if cfg.SampleAlong == nil || cfg.FilterBand == nil || cfg.LFPFilter == nil {
		return nil, fmt.Errorf("%w: configuration was not produced by Resolve", ErrInvalidArgument)
	}

	fieldIndex, err := cfg.ComputeFieldIndex(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ParamFieldIndex, err)
	}

	table, err := cfg.SampleAlong(rec.PosTS, rec.Pos, fieldIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ParamSampleAlong, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ParamSampleAlong, err)
	}

	signal, err := cfg.FilterBand(table, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ParamFilterBand, err)
	}

	res := &Result{
		Config:      cfg,
		FieldIndex:  fieldIndex,
		Table:       table,
		FieldSignal: signal,
	}

	if rec.HasLFP() {
		res.LFPFiltered, res.LFPPhase, err = cfg.LFPFilter(rec.LFPTS, rec.LFPSig)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ParamLFPFilter, err)
		}
	}

	return res, nil
}

// Run resolves opts against rec and prepares the result in one call.
func Run(rec Recording, opts Options) (*Result, error) {
	cfg, err := Resolve(rec, opts)
	if err != nil {
		return nil, err
	}
	return Prepare(rec, cfg)
}
