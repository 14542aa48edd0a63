package viewer

// Stage is a step of the generation pipeline the viewer walks through.
type Stage int

const (
	// StageSeed scatters rooms one at a time.
	StageSeed Stage = iota
	// StageSpread runs one separation iteration per step.
	StageSpread
	// StageClassify picks the main rooms.
	StageClassify
	// StageInfill fills the gaps between rooms with voids.
	StageInfill
	// StageNeighbors links main rooms to their nearest fellows.
	StageNeighbors
	// StageHalls carves corridors between linked main rooms.
	StageHalls
	// StageDone is the finished layout.
	StageDone
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSpread:
		return "spread"
	case StageClassify:
		return "classify"
	case StageInfill:
		return "infill"
	case StageNeighbors:
		return "neighbors"
	case StageHalls:
		return "halls"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}
