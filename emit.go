package pigment

import (
	"fmt"
	"math"
	"strconv"
)

// Emitter renders a resolved color into one constructor expression of
// the output surface language.
type Emitter interface {
	Emit(c RGBA) string
}

// NewEmitter picks the emitter for an output target name.
func NewEmitter(target string, cfg *Config) (Emitter, error) {
	precision := cfg.GetInt("emit.precision")
	clamp := cfg.GetBool("emit.clamp")
	switch target {
	case "go":
		return goEmitter{pkg: cfg.GetString("emit.go_package"), precision: precision, clamp: clamp}, nil
	case "css":
		return cssEmitter{precision: precision}, nil
	case "glsl":
		return glslEmitter{precision: precision, clamp: clamp}, nil
	default:
		return nil, fmt.Errorf("output target `%s` not supported", target)
	}
}

// goEmitter renders a composite literal of the pigment RGBA type,
// qualified by the configured package name.
type goEmitter struct {
	pkg       string
	precision int
	clamp     bool
}

func (g goEmitter) Emit(c RGBA) string {
	if g.clamp {
		c = c.Clamped()
	}
	return fmt.Sprintf("%s.RGBA{R: %s, G: %s, B: %s, A: %s}",
		g.pkg,
		formatChannel(c.R, g.precision),
		formatChannel(c.G, g.precision),
		formatChannel(c.B, g.precision),
		formatChannel(c.A, g.precision))
}

// cssEmitter renders the byte form of the CSS rgba() function.  CSS
// has no out-of-gamut representation, so channels clamp here.
type cssEmitter struct {
	precision int
}

func (g cssEmitter) Emit(c RGBA) string {
	cc := c.Clamped()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(math.Round(cc.R*255)),
		int(math.Round(cc.G*255)),
		int(math.Round(cc.B*255)),
		formatChannel(cc.A, g.precision))
}

// glslEmitter renders a vec4 constructor.
type glslEmitter struct {
	precision int
	clamp     bool
}

func (g glslEmitter) Emit(c RGBA) string {
	if g.clamp {
		c = c.Clamped()
	}
	return fmt.Sprintf("vec4(%s, %s, %s, %s)",
		formatChannel(c.R, g.precision),
		formatChannel(c.G, g.precision),
		formatChannel(c.B, g.precision),
		formatChannel(c.A, g.precision))
}

// formatChannel renders one channel as a decimal literal.  A negative
// precision means shortest exact representation, with a forced decimal
// point.
func formatChannel(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	return formatNumber(v)
}
