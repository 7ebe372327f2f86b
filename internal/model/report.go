package model

// Path represents a file system path.
type Path string

// Params are the caller-supplied cutoffs of a discovery run.
type Params struct {
	MinLen             int
	MaxLen             int
	Floor              float64
	MinDensityIncrease float64
	MergeThreshold     float64
	Threads            int
}

// Report is the ranked outcome of a discovery run.
type Report struct {
	Dataset   Path
	Params    Params
	Sequences int
	// Candidates counts the scored candidates offered to the registry.
	Candidates int
	Motifs     []Motif
}
