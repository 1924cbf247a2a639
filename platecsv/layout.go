package platecsv

import (
	"strings"

	"github.com/quantbio/qpcrmisc/ddct"
)

// Layout describes one instrument-export flavor: how the file is
// delimited and how its raw primer labels map onto the two primer
// roles. The mapping is always explicit; an unmapped label is an
// error, never a guess.
type Layout struct {
	// Delimiter separates fields. Zero means sniff it from the input.
	Delimiter rune

	Comment rune

	// PrimerGroups maps lowercased raw primer labels to their role.
	PrimerGroups map[string]ddct.PrimerGroup
}

var Layouts = map[string]Layout{
	// Comma-delimited export with the conventional HK/test labels.
	"generic": {
		Delimiter: ',',
		Comment:   '#',
		PrimerGroups: map[string]ddct.PrimerGroup{
			"hk":           ddct.Housekeeping,
			"housekeeping": ddct.Housekeeping,
			"reference":    ddct.Housekeeping,
			"test":         ddct.Target,
			"target":       ddct.Target,
		},
	},

	// Same labels, but the delimiter is detected from the file. Useful
	// for exports re-saved through spreadsheet software.
	"sniff": {
		Comment: '#',
		PrimerGroups: map[string]ddct.PrimerGroup{
			"hk":           ddct.Housekeeping,
			"housekeeping": ddct.Housekeeping,
			"reference":    ddct.Housekeeping,
			"test":         ddct.Target,
			"target":       ddct.Target,
		},
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}
