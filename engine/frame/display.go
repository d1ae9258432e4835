package frame

import (
	"bytes"
	"errors"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode        DisplayMode = iota   // unset or error condition
	DisplayNone   DisplayMode = 0x0001 // CSS outer display = none
	FlowMode      DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode     DisplayMode = 0x0004 // CSS block context (inner or outer)
	InlineMode    DisplayMode = 0x0008 // CSS inline context
	ListItemMode  DisplayMode = 0x0010 // CSS list-item display
	FlowRoot      DisplayMode = 0x0020 // CSS flow-root display property
	FlexMode      DisplayMode = 0x0040 // CSS inner display = flex
	GridMode      DisplayMode = 0x0080 // CSS inner display = grid
	TableMode     DisplayMode = 0x0100 // CSS table display property (inner or outer)
	ContentsMode  DisplayMode = 0x0200 // CSS contents display mode, experimental !
	TablePartMode DisplayMode = 0x0400 // rows, row groups, cells, captions, columns
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, ListItemMode, FlowRoot, FlexMode,
	GridMode, TableMode, ContentsMode, TablePartMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:        "NoMode",
	DisplayNone:   "DisplayNone",
	FlowMode:      "FlowMode",
	BlockMode:     "BlockMode",
	InlineMode:    "InlineMode",
	ListItemMode:  "ListItemMode",
	FlowRoot:      "FlowRoot",
	FlexMode:      "FlexMode",
	GridMode:      "GridMode",
	TableMode:     "TableMode",
	ContentsMode:  "ContentsMode",
	TablePartMode: "TablePartMode",
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == FlowMode {
		return "▧"
	} else if disp.Contains(TablePartMode) {
		return "▦"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	}
	return "?"
}

// ErrUnknownDisplay is returned by ParseDisplay for unrecognized keywords.
var ErrUnknownDisplay = errors.New("unknown display mode")

var displayKeywords = map[string]DisplayMode{
	"none":               DisplayNone,
	"contents":           ContentsMode,
	"block":              BlockMode | FlowMode,
	"inline":             InlineMode | FlowMode,
	"inline-block":       InlineMode | FlowRoot,
	"flow-root":          BlockMode | FlowRoot,
	"list-item":          BlockMode | FlowMode | ListItemMode,
	"flex":               BlockMode | FlexMode,
	"inline-flex":        InlineMode | FlexMode,
	"grid":               BlockMode | GridMode,
	"inline-grid":        InlineMode | GridMode,
	"table":              BlockMode | TableMode,
	"inline-table":       InlineMode | TableMode,
	"table-row-group":    TablePartMode,
	"table-header-group": TablePartMode,
	"table-footer-group": TablePartMode,
	"table-row":          TablePartMode,
	"table-column-group": TablePartMode,
	"table-column":       TablePartMode,
	"table-cell":         TablePartMode | FlowRoot,
	"table-caption":      TablePartMode | FlowRoot,
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// An empty string yields NoMode.
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if m, ok := displayKeywords[display]; ok {
		return m, nil
	}
	return NoMode, ErrUnknownDisplay
}
