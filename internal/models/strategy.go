package models

// Strategy identifies the deal structure of an analysis. The set is closed;
// all dispatch happens on these tags, never on substring matching.
type Strategy string

const (
	StrategyLTR           Strategy = "LTR"
	StrategyPadSplitLTR   Strategy = "PadSplit LTR"
	StrategyBRRRR         Strategy = "BRRRR"
	StrategyPadSplitBRRRR Strategy = "PadSplit BRRRR"
	StrategyMultiFamily   Strategy = "Multi-Family"
	StrategyLeaseOption   Strategy = "Lease Option"
)

// Valid reports whether s is one of the known strategy tags.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyLTR, StrategyPadSplitLTR, StrategyBRRRR,
		StrategyPadSplitBRRRR, StrategyMultiFamily, StrategyLeaseOption:
		return true
	}
	return false
}

// PadSplit reports whether the co-living cost lines (utilities, platform fee,
// furnishing) apply to this strategy.
func (s Strategy) PadSplit() bool {
	return s == StrategyPadSplitLTR || s == StrategyPadSplitBRRRR
}

// TwoPhase reports whether the deal uses BRRRR two-phase financing
// (bridge loan during renovation, refinance as permanent debt).
func (s Strategy) TwoPhase() bool {
	return s == StrategyBRRRR || s == StrategyPadSplitBRRRR
}
