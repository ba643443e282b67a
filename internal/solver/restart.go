package solver

// RestartPolicy selects which restart schedule a Restarter follows (spec
// §4.7).
type RestartPolicy int

const (
	RestartNone RestartPolicy = iota
	RestartGeometric
	RestartLuby
)

// ParseRestartPolicy maps the CLI's restarter string onto a RestartPolicy,
// matching the original's exact accepted spellings.
func ParseRestartPolicy(s string) (RestartPolicy, bool) {
	switch s {
	case "None":
		return RestartNone, true
	case "GEOMETRIC":
		return RestartGeometric, true
	case "LUBY":
		return RestartLuby, true
	default:
		return RestartNone, false
	}
}

// Restarter tracks the conflict count against a schedule and reports when
// the solver driver should restart. Geometric doubles the limit on every
// restart; Luby rescales a fixed base by the next term of the Luby
// sequence.
type Restarter struct {
	policy             RestartPolicy
	conflictsSinceLast int
	conflictLimit      int
	limitMult          int
	lubyBase           int
	luby               *LubyGenerator
}

// NewRestarter builds a Restarter for policy, seeded with the original's
// defaults: a geometric base of 512 doubling each restart, and a Luby base
// of 512 scaled by the Luby sequence.
func NewRestarter(policy RestartPolicy) *Restarter {
	r := &Restarter{
		policy:    policy,
		limitMult: 2,
		lubyBase:  512,
		luby:      NewLubyGenerator(),
	}
	switch policy {
	case RestartGeometric:
		r.conflictLimit = 512
	case RestartLuby:
		r.luby.Reset()
		r.conflictLimit = r.lubyBase * r.luby.Next()
	}
	return r
}

// OnConflict records one conflict and reports whether the solver driver
// should restart now. When it returns true, the internal counter and
// schedule have already advanced for the next restart window.
func (r *Restarter) OnConflict() bool {
	if r.policy == RestartNone {
		return false
	}
	r.conflictsSinceLast++
	if r.conflictsSinceLast < r.conflictLimit {
		return false
	}
	r.conflictsSinceLast = 0
	switch r.policy {
	case RestartGeometric:
		r.conflictLimit *= r.limitMult
	case RestartLuby:
		r.conflictLimit = r.lubyBase * r.luby.Next()
	}
	return true
}

// ConflictLimit returns the current conflict threshold, for trace logging.
func (r *Restarter) ConflictLimit() int { return r.conflictLimit }
