package sat

import "github.com/rhartert/yagh"

// VarOrder maintains the order in which unassigned variables are offered up
// as decisions. It implements an EVSIDS-style heuristic: every variable has
// an activity score, bumped whenever it appears in a just-learned clause and
// periodically decayed so that recent conflicts dominate older ones. The
// variable with the highest score is selected first; ties break by
// declaration order, which falls out of the heap's own tie-breaking.
type VarOrder struct {
	// Binary heap to access the next variable with the highest score. Scores
	// are pushed negated since yagh.IntMap is a min-heap.
	order *yagh.IntMap[float64]

	scores     []float64 // in [0, 1e100)
	scoreInc   float64   // in (0, 1e100)
	scoreDecay float64   // in (0, 1]

	phases      []LBool
	phaseSaving bool
}

// NewVarOrder returns a new, empty VarOrder. decay is the per-conflict
// activity decay factor; phaseSaving controls whether a variable's last
// assigned value is replayed as its next decision's polarity.
func NewVarOrder(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		order:       yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  decay,
		phases:      make([]LBool, 0),
		phaseSaving: phaseSaving,
	}
}

// AddVar registers a new variable with the given initial score and phase,
// and returns its Variable identity. Variables are always added in order, so
// the returned identity is always one greater than the previously added one.
func (vo *VarOrder) AddVar(initScore float64, initPhase bool) Variable {
	v := Variable(len(vo.phases))
	vo.scores = append(vo.scores, initScore)
	vo.phases = append(vo.phases, Lift(initPhase))
	vo.order.GrowBy(1)
	vo.order.Put(int(v), -initScore)
	return v
}

// Reinsert adds variable v back to the set of candidates to be selected. The
// solver calls this when v becomes unassigned (e.g. on backjump), passing
// the value v held just before being unassigned so phase saving can record it.
func (vo *VarOrder) Reinsert(v Variable, val LBool) {
	if vo.phaseSaving {
		vo.phases[v] = val
	}
	vo.order.Put(int(v), -vo.scores[v])
}

// DecayScores slightly decreases the scores of every variable relative to
// the increment applied by future bumps, so that recently-bumped variables
// dominate the order over ones bumped many conflicts ago.
func (vo *VarOrder) DecayScores() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// BumpScore increases the activity of v, as when v's variable appears in a
// clause produced by conflict analysis. May trigger a rescale of every
// variable's score if v's score grows past a threshold; the rescale
// preserves relative order between variables.
func (vo *VarOrder) BumpScore(v Variable) {
	newScore := vo.scores[v] + vo.scoreInc
	vo.scores[v] = newScore
	if vo.order.Contains(int(v)) {
		vo.order.Put(int(v), -newScore)
	}
	if newScore > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// NextDecision returns the highest-activity variable that valueOf reports as
// Unknown, lifted to a literal using its saved phase (or true, the first time
// it is ever decided). It returns ok=false once every variable the heap knows
// about has been assigned — a total assignment, not an error.
func (vo *VarOrder) NextDecision(valueOf func(Variable) LBool) (lit Literal, ok bool) {
	for {
		next, hasNext := vo.order.Pop()
		if !hasNext {
			return 0, false
		}
		v := Variable(next.Elem)
		if valueOf(v) != Unknown {
			continue
		}
		if vo.phases[v] == False {
			return NegativeLiteral(v), true
		}
		return PositiveLiteral(v), true
	}
}

func (vo *VarOrder) rescaleScoresAndIncrement() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		newScore := sc * 1e-100
		vo.scores[v] = newScore
		if vo.order.Contains(v) {
			vo.order.Put(v, -newScore)
		}
	}
}
