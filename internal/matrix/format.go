package matrix

import (
	"strconv"
	"strings"
)

// String renders the matrix one row per line with columns separated by tabs.
// Values use plain decimal notation, never an exponent.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(m.data[r*m.cols+c], 'f', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
