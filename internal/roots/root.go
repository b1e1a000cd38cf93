package roots

// Method is any bracketed solver with the shared contract.
type Method func(f Func, br Estimate, tolr, intercept float64) Result

// RootResult combines the two phases of the composite search: the
// bracketing expansion and the bracketed solve, with their evaluation
// counts kept apart so callers can attribute cost.
type RootResult struct {
	Status             Status
	Estimate           Estimate
	BracketEvaluations int
	SolveEvaluations   int
}

// Root brackets outward from guess and hands the bracket to the chosen
// method, solving f(x) == intercept. A failed bracketing phase is reported
// as BracketFailed with zero solve evaluations; the solve never starts.
func Root(f Func, guess, tolr, intercept float64, method Method) RootResult {
	shifted := func(x float64) float64 { return f(x) - intercept }
	br := Bracket(shifted, guess)
	if br.Status != Converged {
		return RootResult{Status: BracketFailed, BracketEvaluations: br.Evaluations}
	}
	if br.Estimate.Exact() {
		return RootResult{
			Status:             Converged,
			Estimate:           br.Estimate,
			BracketEvaluations: br.Evaluations,
		}
	}

	// The bracket holds f - intercept values; restore f at the endpoints
	// for the method's contract.
	est := br.Estimate
	est.FA += intercept
	est.FB += intercept
	r := method(f, est, tolr, intercept)
	return RootResult{
		Status:             r.Status,
		Estimate:           r.Estimate,
		BracketEvaluations: br.Evaluations,
		SolveEvaluations:   r.Evaluations,
	}
}

// RootIn is Root with bounds forwarded to the bracketing phase.
func RootIn(f Func, guess, xmin, xmax, tolr, intercept float64, method Method) RootResult {
	shifted := func(x float64) float64 { return f(x) - intercept }
	br := BracketIn(shifted, guess, xmin, xmax)
	if br.Status != Converged {
		return RootResult{Status: BracketFailed, BracketEvaluations: br.Evaluations}
	}
	if br.Estimate.Exact() {
		return RootResult{
			Status:             Converged,
			Estimate:           br.Estimate,
			BracketEvaluations: br.Evaluations,
		}
	}
	est := br.Estimate
	est.FA += intercept
	est.FB += intercept
	r := method(f, est, tolr, intercept)
	return RootResult{
		Status:             r.Status,
		Estimate:           r.Estimate,
		BracketEvaluations: br.Evaluations,
		SolveEvaluations:   r.Evaluations,
	}
}
