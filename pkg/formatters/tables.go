package formatters

// BaseColors are the eight ANSI colours in index order.
var BaseColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// BrightOffset is added to a base colour index for its bright variant.
const BrightOffset = 8

// colorPrefixes are the derivatives accepted in front of a base colour.
var colorPrefixes = []string{"on", "bright", "on_bright"}

// MakeColors returns every colour name derived from base: the names
// themselves plus their on_, bright_ and on_bright_ variants.
func MakeColors(base []string) map[string]bool {
	colors := make(map[string]bool, len(base)*(len(colorPrefixes)+1))
	for _, color := range base {
		colors[color] = true
		for _, prefix := range colorPrefixes {
			colors[prefix+"_"+color] = true
		}
	}
	return colors
}

// MakeColorIndex maps each base colour to its position in base.
func MakeColorIndex(base []string) map[string]int {
	index := make(map[string]int, len(base))
	for i, color := range base {
		index[color] = i
	}
	return index
}

// DefaultCompoundables lists attributes that can be joined with colours
// and with each other in compound names.
var DefaultCompoundables = []string{
	"bold", "underline", "reverse", "blink", "dim", "italic",
	"shadow", "standout", "subscript", "superscript",
}

// Resolver holds the name tables used for attribute dispatch.
//
// The tables are read only once a Resolver is in use. Tests build their
// own Resolver instead of touching DefaultResolver.
type Resolver struct {
	Colors        map[string]bool
	Compoundables map[string]bool
	ColorIndex    map[string]int
	BrightOffset  int
}

// NewResolver returns a Resolver with the standard ANSI tables.
func NewResolver() *Resolver {
	compoundables := make(map[string]bool, len(DefaultCompoundables))
	for _, name := range DefaultCompoundables {
		compoundables[name] = true
	}
	return &Resolver{
		Colors:        MakeColors(BaseColors),
		Compoundables: compoundables,
		ColorIndex:    MakeColorIndex(BaseColors),
		BrightOffset:  BrightOffset,
	}
}

// DefaultResolver backs the package level resolve functions.
var DefaultResolver = NewResolver()

// IsColor reports whether name is a colour name.
func (r *Resolver) IsColor(name string) bool {
	return r.Colors[name]
}

// IsCompoundable reports whether name may appear in a compound.
func (r *Resolver) IsCompoundable(name string) bool {
	return r.Compoundables[name]
}
