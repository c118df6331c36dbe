package board

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// columnLetters skips 'I' per Go convention (A-H, J-T), giving columns for
// boards up to side 19.
const columnLetters = "ABCDEFGHJKLMNOPQRST"

// ParseCoord parses a GTP-style coordinate ("A1".."T19", case-insensitive)
// or the literal "pass"/"resign" into a Point.
func ParseCoord(g Geometry, s string) (Point, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "pass":
		return PASS, nil
	case "resign":
		return Resign, nil
	}
	if len(s) < 2 {
		return NoKo, errors.Errorf("board: coordinate %q too short", s)
	}
	col := strings.IndexByte(columnLetters, byte(strings.ToUpper(s[:1])[0]))
	if col < 0 || col >= g.N {
		return NoKo, errors.Errorf("board: invalid column in coordinate %q", s)
	}
	rowNum, err := strconv.Atoi(s[1:])
	if err != nil {
		return NoKo, errors.Wrapf(err, "board: invalid row in coordinate %q", s)
	}
	if rowNum < 1 || rowNum > g.N {
		return NoKo, errors.Errorf("board: row out of range in coordinate %q", s)
	}
	row := g.N - rowNum // rows are 1-indexed from the bottom
	return g.Pt(row, col), nil
}

// StrCoord is the inverse of ParseCoord.
func StrCoord(g Geometry, p Point) string {
	switch p {
	case PASS:
		return "pass"
	case Resign:
		return "resign"
	}
	row, col := g.RowCol(p)
	rowNum := g.N - row
	return string(columnLetters[col]) + strconv.Itoa(rowNum)
}
