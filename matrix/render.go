// SPDX-License-Identifier: MIT

package matrix

// Render returns the canonical dense form of m: the logical n×n matrix with
// zeros off-band, one row per line, e.g. for n=2:
//
//	[4, 1]
//	[0.99, 4.1]
//
// Presentation only: the solver never calls it. A nil matrix renders as "<nil>".
// Complexity: O(n²).
func Render(m *BandedMatrix) string {
	if m == nil {
		return "<nil>"
	}
	d, err := m.ToDense()
	if err != nil {
		return "<nil>"
	}

	return d.String()
}
