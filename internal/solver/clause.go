package solver

import "fmt"

// ClauseID identifies a clause in the database. Original clauses and
// learned clauses share the same id space and representation; they differ
// only in the Learnt flag and in whether they count against the learned
// clause cap.
type ClauseID int

// ClauseIDUndef marks "no clause" — used as the antecedent of a level-0
// unit assignment and as the clause id returned when there is none.
// Decisions use AntecedentDecision instead.
const ClauseIDUndef ClauseID = -1

// Clause is an ordered, deduplicated, tautology-free sequence of literals.
type Clause struct {
	ID     ClauseID
	Lits   []Lit
	Learnt bool
}

func (c *Clause) String() string {
	return fmt.Sprintf("C%d%v", c.ID, c.Lits)
}

// watchPair is the per-clause watch record of §3: the two literals
// currently watching this clause. They need not be the clause's first two
// positions once BCP has rewritten them.
type watchPair struct {
	a, b Lit
}

// ClauseDB owns clause storage and the bidirectional watcher index. It
// mirrors the teacher's map-backed ClauseAllocator (clause.go /
// clauseallocator.go), generalized from gatosat's MiniSat-style two-literal
// front of Data to the spec's explicit separate watch record.
type ClauseDB struct {
	clauses map[ClauseID]*Clause
	watch   map[ClauseID]watchPair
	nextID  ClauseID

	// watchedBy[l] is the list of clause ids currently watched by literal l.
	// Indexed 1..2*numVars; index 0 is unused.
	watchedBy [][]ClauseID

	numVars int

	// learntOrder is the FIFO order learned clauses were added in, used to
	// enforce the learned-clause size cap (spec §5: "Memory discipline").
	learntOrder []ClauseID
	learntCap   int

	// trail lets trimIfOverCap skip a clause that is still the antecedent
	// of a live assignment. Set once via BindTrail, after both the DB and
	// the trail exist.
	trail *Trail
}

// BindTrail records the trail trimIfOverCap consults to avoid dropping a
// clause still locked as an assignment's antecedent.
func (db *ClauseDB) BindTrail(t *Trail) {
	db.trail = t
}

// NewClauseDB creates an empty clause database sized for numVars variables.
// learntCap bounds the number of learned clauses retained; 0 means
// unbounded.
func NewClauseDB(numVars, learntCap int) *ClauseDB {
	return &ClauseDB{
		clauses:   make(map[ClauseID]*Clause),
		watch:     make(map[ClauseID]watchPair),
		watchedBy: make([][]ClauseID, 2*numVars+1),
		numVars:   numVars,
		learntCap: learntCap,
	}
}

// GrowToVar extends the watcher index to cover a larger variable count.
// Original clauses never introduce new variables (invariant 6 of §3), so
// this only runs at ingest time before any clause references numVars+1.
func (db *ClauseDB) GrowToVar(numVars int) {
	if numVars <= db.numVars {
		return
	}
	grown := make([][]ClauseID, 2*numVars+1)
	copy(grown, db.watchedBy)
	db.watchedBy = grown
	db.numVars = numVars
}

// Add stores a clause and, for non-unit clauses, installs its initial
// watchers on lits[0] and lits[1] (spec §4.1 step 5). The caller is
// responsible for unit and empty clauses; Add panics if given fewer than 2
// literals, matching the invariant that every stored clause is watched by
// exactly two distinct literals.
func (db *ClauseDB) Add(lits []Lit, learnt bool) ClauseID {
	if len(lits) < 2 {
		panic(fmt.Sprintf("internal invariant violation: clause with %d literals passed to ClauseDB.Add", len(lits)))
	}
	id := db.nextID
	db.nextID++
	c := &Clause{ID: id, Lits: lits, Learnt: learnt}
	db.clauses[id] = c
	db.setWatchers(id, lits[0], lits[1])
	if learnt {
		db.learntOrder = append(db.learntOrder, id)
		db.trimIfOverCap()
	}
	return id
}

func (db *ClauseDB) setWatchers(id ClauseID, a, b Lit) {
	db.watch[id] = watchPair{a, b}
	db.watchedBy[a] = append(db.watchedBy[a], id)
	db.watchedBy[b] = append(db.watchedBy[b], id)
}

// Get returns the clause for id. It panics if id is unknown: every
// ClauseID handed to callers came either from Add or from the trail's
// antecedent field, so a miss is an internal invariant violation, not a
// recoverable error (spec §7).
func (db *ClauseDB) Get(id ClauseID) *Clause {
	c, ok := db.clauses[id]
	if !ok {
		panic(fmt.Sprintf("internal invariant violation: unknown clause id %d", id))
	}
	return c
}

// Watchers returns the pair of literals currently watching id.
func (db *ClauseDB) Watchers(id ClauseID) (Lit, Lit) {
	w := db.watch[id]
	return w.a, w.b
}

// WatchedBy returns the list of clause ids currently watched by l. Callers
// mutate the returned slice in place via RemoveWatchAt (swap-and-pop), so
// it is handed back by reference, not copied.
func (db *ClauseDB) WatchedBy(l Lit) []ClauseID {
	return db.watchedBy[l]
}

// RemoveWatchAt removes, via swap-with-tail-then-pop, the clause at index i
// in l's watch list. This is safe mid-reverse-iteration because the
// swapped-in element comes from the tail, which the caller's reverse loop
// has already visited, and the loop continues below index i (spec §4.2,
// "Iteration detail").
func (db *ClauseDB) RemoveWatchAt(l Lit, i int) {
	ws := db.watchedBy[l]
	last := len(ws) - 1
	ws[i] = ws[last]
	db.watchedBy[l] = ws[:last]
}

// AppendWatch adds clause id to l's watch list and records l as one of the
// clause's two current watchers, replacing old in the clause's watch
// record.
func (db *ClauseDB) AppendWatch(l Lit, id ClauseID, old Lit) {
	db.watchedBy[l] = append(db.watchedBy[l], id)
	w := db.watch[id]
	if w.a == old {
		w.a = l
	} else {
		w.b = l
	}
	db.watch[id] = w
}

// trimIfOverCap enforces the learned-clause size cap with a simple FIFO
// drop of the oldest learned clauses, the minimal strategy spec §5 and the
// Open Questions call for ("no LBD-based deletion ... outside this spec").
// It skips any clause still locked as a live assignment's antecedent, and
// detaches a dropped clause from both its watch lists so a later BCP pass
// never walks into a dangling id; trimming only ever runs right after Add,
// never mid-Propagate, so mutating watchedBy here is safe.
func (db *ClauseDB) trimIfOverCap() {
	if db.learntCap <= 0 {
		return
	}
	for len(db.learntOrder) > db.learntCap {
		i := 0
		for i < len(db.learntOrder) && db.trail != nil && db.trail.Locked(db.learntOrder[i]) {
			i++
		}
		if i == len(db.learntOrder) {
			return
		}
		oldest := db.learntOrder[i]
		db.learntOrder = append(db.learntOrder[:i], db.learntOrder[i+1:]...)
		w := db.watch[oldest]
		db.detachWatch(w.a, oldest)
		db.detachWatch(w.b, oldest)
		delete(db.clauses, oldest)
		delete(db.watch, oldest)
	}
}

// detachWatch removes id from l's watch list, if present.
func (db *ClauseDB) detachWatch(l Lit, id ClauseID) {
	ws := db.watchedBy[l]
	for i, x := range ws {
		if x == id {
			last := len(ws) - 1
			ws[i] = ws[last]
			db.watchedBy[l] = ws[:last]
			return
		}
	}
}

// NumClauses returns the number of original (non-learned) clauses stored.
func (db *ClauseDB) NumClauses() int {
	n := 0
	for _, c := range db.clauses {
		if !c.Learnt {
			n++
		}
	}
	return n
}

// NumLearnt returns the number of learned clauses currently retained.
func (db *ClauseDB) NumLearnt() int {
	return len(db.learntOrder)
}
