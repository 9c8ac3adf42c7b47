// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rxnet/matrix"
)

// MatrixView is the serialised form of a labelled matrix.
type MatrixView struct {
	Name    string      `json:"name"`
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

func newMatrixView(name string, d *matrix.Dense, rows, cols []string) (MatrixView, error) {
	v := MatrixView{Name: name, Rows: rows, Columns: cols, Values: make([][]float64, d.Rows())}
	for i := range v.Values {
		row, err := d.Row(i)
		if err != nil {
			return MatrixView{}, err
		}
		v.Values[i] = row
	}

	return v, nil
}

// writeTable prints v tab-separated: a header of column labels, then one
// labelled line per row.
func (v MatrixView) writeTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", v.Name, strings.Join(v.Columns, "\t")); err != nil {
		return err
	}
	cells := make([]string, 0, len(v.Columns))
	for i, row := range v.Values {
		cells = cells[:0]
		for _, x := range row {
			cells = append(cells, formatFloat(x))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", v.Rows[i], strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return nil
}

// formatFloat prints the shortest representation; negative zero prints as 0.
func formatFloat(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
