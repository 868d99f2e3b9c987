package combat

import "errors"

// ErrInvalidState reports a RunState with health/armor out of [0, max], or a
// charge outside {-1,0,1,2,3}. The engine may choose to clamp and continue
// (see ClampState) rather than fail outright.
var ErrInvalidState = errors.New("combat: invalid state")

// ErrNoLegalAction reports a loot phase with no offered loot options.
var ErrNoLegalAction = errors.New("combat: no legal action")

// sentinel score ScoreLootWithWeights returns in place of a non-finite
// result, including one caused by a non-finite evaluator score in its
// state-delta term. Evaluate itself does not clamp.
const negativeInfinitySentinel = -1e18
