package pigment

import "strings"

// Variant identifies one of the supported color literal formats.  The
// set is closed: resolution matches the first argument's label against
// it and anything else is an unknown-label diagnostic.
type Variant int

const (
	Variant_Hex Variant = iota
	Variant_RGB
	Variant_RGBA
	Variant_HSL
	Variant_HSLA
	Variant_HSB
	Variant_HSBA
)

type variantInfo struct {
	label    string
	display  string
	arity    int
	hasAlpha bool
	group    string
}

// variantTable is the only shared state in the resolver, and it is
// read-only: safe for unsynchronized concurrent lookups.
var variantTable = map[Variant]variantInfo{
	Variant_Hex:  {label: "hex", display: "Hex", arity: 1, hasAlpha: false, group: "Values"},
	Variant_RGB:  {label: "rgb", display: "RGB", arity: 3, hasAlpha: false, group: "RGB components"},
	Variant_RGBA: {label: "rgba", display: "RGBA", arity: 4, hasAlpha: true, group: "RGB components"},
	Variant_HSL:  {label: "hsl", display: "HSL", arity: 3, hasAlpha: false, group: "HSL components"},
	Variant_HSLA: {label: "hsla", display: "HSLA", arity: 4, hasAlpha: true, group: "HSL components"},
	Variant_HSB:  {label: "hsb", display: "HSB", arity: 3, hasAlpha: false, group: "HSB components"},
	Variant_HSBA: {label: "hsba", display: "HSBA", arity: 4, hasAlpha: true, group: "HSB components"},
}

var variantByLabel = func() map[string]Variant {
	m := make(map[string]Variant, len(variantTable))
	for v, info := range variantTable {
		m[info.label] = v
	}
	return m
}()

// LookupVariant matches a label against the variant set.  Matching is
// case-insensitive.
func LookupVariant(label string) (Variant, bool) {
	v, ok := variantByLabel[strings.ToLower(label)]
	return v, ok
}

// Label returns the canonical lowercase label of the variant.
func (v Variant) Label() string { return variantTable[v].label }

// DisplayName is the human readable name used in messages.
func (v Variant) DisplayName() string { return variantTable[v].display }

// Arity returns how many arguments the variant expects, the format
// label included in the first one.
func (v Variant) Arity() int { return variantTable[v].arity }

// HasAlpha reports whether the variant's last argument is an alpha
// channel.
func (v Variant) HasAlpha() bool { return variantTable[v].hasAlpha }

// ComponentGroup is the wording used by range diagnostics to name the
// variant's channel arguments.
func (v Variant) ComponentGroup() string { return variantTable[v].group }

func (v Variant) String() string { return v.Label() }
