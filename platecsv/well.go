package platecsv

import (
	"fmt"
	"strconv"
	"strings"
)

// A standard 96-well plate: rows A-H, columns 1-12.
const (
	minWellRow = 'A'
	maxWellRow = 'H'
	minWellCol = 1
	maxWellCol = 12
)

// ValidateWell checks that a well identifier names a position on a
// 96-well plate, e.g. "A1" through "H12".
func ValidateWell(well string) error {
	trimmed := strings.ToUpper(strings.TrimSpace(well))
	if len(trimmed) < 2 {
		return fmt.Errorf("well %q is not a plate position", well)
	}

	row := trimmed[0]
	if row < minWellRow || row > maxWellRow {
		return fmt.Errorf("well %q: row %q is outside %c-%c", well, string(row), minWellRow, maxWellRow)
	}

	col, err := strconv.Atoi(trimmed[1:])
	if err != nil {
		return fmt.Errorf("well %q: column %q is not numeric", well, trimmed[1:])
	}

	if col < minWellCol || col > maxWellCol {
		return fmt.Errorf("well %q: column %d is outside %d-%d", well, col, minWellCol, maxWellCol)
	}

	return nil
}
