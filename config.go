package pigment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by the expander and the emitters.
func NewConfig() *Config {
	m := make(Config)
	// output surface for emitted constructors
	m.SetString("emit.target", "go")
	// package qualifier used by the go target
	m.SetString("emit.go_package", "pigment")
	// channel decimal places; negative means shortest exact form
	m.SetInt("emit.precision", -1)
	// clamp overdriven HSL/HSB channels into [0,1] before emitting
	m.SetBool("emit.clamp", false)
	// color spliced in when a literal fails to resolve; empty
	// keeps the transparent sentinel
	m.SetString("expand.fallback", "")
	return &m
}

// FileConfig is the optional pigment.yaml configuration.
type FileConfig struct {
	Emit struct {
		Target    string `yaml:"target,omitempty"`
		GoPackage string `yaml:"go_package,omitempty"`
		Precision *int   `yaml:"precision,omitempty"`
		Clamp     *bool  `yaml:"clamp,omitempty"`
	} `yaml:"emit"`
	Expand struct {
		Fallback string `yaml:"fallback,omitempty"`
	} `yaml:"expand"`
}

// LoadOptional reads pigment.yaml from dir if present and applies it
// on top of the config defaults.
func (c *Config) LoadOptional(dir string) error {
	return c.LoadFile(filepath.Join(dir, "pigment.yaml"), true)
}

// LoadFile reads a yaml configuration file into the config.  When
// optional is set, a missing file is not an error.
func (c *Config) LoadFile(path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if v := strings.TrimSpace(fc.Emit.Target); v != "" {
		c.SetString("emit.target", v)
	}
	if v := strings.TrimSpace(fc.Emit.GoPackage); v != "" {
		c.SetString("emit.go_package", v)
	}
	if fc.Emit.Precision != nil {
		c.SetInt("emit.precision", *fc.Emit.Precision)
	}
	if fc.Emit.Clamp != nil {
		c.SetBool("emit.clamp", *fc.Emit.Clamp)
	}
	if v := strings.TrimSpace(fc.Expand.Fallback); v != "" {
		if _, err := ParseFallback(v); err != nil {
			return fmt.Errorf("invalid expand.fallback in %s: %w", path, err)
		}
		c.SetString("expand.fallback", v)
	}
	return nil
}

// ParseFallback resolves the configured fallback color: a hex string,
// or an SVG 1.1 color name.  An empty string keeps the transparent
// sentinel.
func ParseFallback(text string) (RGBA, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback, nil
	}
	if named, ok := colornames.Map[strings.ToLower(text)]; ok {
		return RGBA{
			R: float64(named.R) / 255.0,
			G: float64(named.G) / 255.0,
			B: float64(named.B) / 255.0,
			A: float64(named.A) / 255.0,
		}, nil
	}
	c, err := ParseHex(text)
	if err != nil {
		return Fallback, fmt.Errorf("unknown color name or hex string `%s`: %w", text, err)
	}
	return c, nil
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}
