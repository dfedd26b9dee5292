package matrix

// Add returns the elementwise sum m + other.
// It panics with ErrDimensionMismatch if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	sameShape("Add", m, other)
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v + other.data[i]
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// Subtract returns the elementwise difference m - other.
// It panics with ErrDimensionMismatch if the shapes differ.
func (m *Matrix) Subtract(other *Matrix) *Matrix {
	sameShape("Subtract", m, other)
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v - other.data[i]
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// ElementwiseMultiply returns the Hadamard product of m and other.
// It panics with ErrDimensionMismatch if the shapes differ.
func (m *Matrix) ElementwiseMultiply(other *Matrix) *Matrix {
	sameShape("ElementwiseMultiply", m, other)
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v * other.data[i]
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// DotMultiply returns the matrix product m · other, of shape
// (m.Rows(), other.Cols()). It panics with ErrDimensionMismatch unless
// m.Cols() == other.Rows().
//
// result[i][j] = Σ_k m[i][k] * other[k][j], accumulated with k ascending so
// rounding is reproducible.
func (m *Matrix) DotMultiply(other *Matrix) *Matrix {
	if m.cols != other.rows {
		mismatch("DotMultiply", m, other)
	}
	rows, inner, cols := m.rows, m.cols, other.cols
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += m.data[i*inner+k] * other.data[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}
	return &Matrix{rows: rows, cols: cols, data: out}
}

// Transpose returns the cols×rows matrix t with t[j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	out := make([]float64, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return &Matrix{rows: m.cols, cols: m.rows, data: out}
}

// Map returns a matrix of the same shape with f applied to every element.
// The receiver is left untouched.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = f(v)
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// Equals reports whether m and other have the same shape and exactly equal
// elements. There is no floating-point tolerance; use it for assertions,
// not for numeric comparison.
func (m *Matrix) Equals(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}
