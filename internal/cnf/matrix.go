package cnf

// Matrix is the occurrence matrix: for each literal slot, the ids of the
// clauses connected on that literal. Which literals of a clause get connected
// depends on the simplification direction, so the matrix starts empty and the
// driver decides.
type Matrix [][]int

// NewMatrix returns an occurrence matrix sized for variables 1..vars.
func NewMatrix(vars int) Matrix {
	return make(Matrix, 2*vars)
}

// Connect appends the clause id to the occurrence list of l.
func (m Matrix) Connect(l Lit, id int) {
	slot := l.Slot()
	m[slot] = append(m[slot], id)
}

// Occurrences returns the occurrence list of l.
func (m Matrix) Occurrences(l Lit) []int {
	return m[l.Slot()]
}

// Count returns the length of the occurrence list of l.
func (m Matrix) Count(l Lit) int {
	return len(m[l.Slot()])
}

// Reset empties every occurrence list, keeping allocated capacity.
func (m Matrix) Reset() {
	for i := range m {
		m[i] = m[i][:0]
	}
}
