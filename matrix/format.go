// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders the logical contents one row per line with two decimals:
//
//	[1.00, 2.00]
//	[3.00, 4.00]
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var buf []byte
	cols := m.Cols()
	m.Do(func(_, j int, v float64) bool {
		if j == 0 {
			b.WriteString(_fmtRowOpen)
		}
		buf = strconv.AppendFloat(buf[:0], v, 'f', 2, 64)
		b.Write(buf)
		if j+1 < cols {
			b.WriteString(_fmtSep)
		} else {
			b.WriteString(_fmtRowClose)
		}
		return true
	})

	return b.String()
}
