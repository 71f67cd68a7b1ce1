package pigment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmitter(t *testing.T, target string, tweak func(cfg *Config)) Emitter {
	t.Helper()
	cfg := NewConfig()
	if tweak != nil {
		tweak(cfg)
	}
	emitter, err := NewEmitter(target, cfg)
	require.NoError(t, err)
	return emitter
}

func TestGoEmitter(t *testing.T) {
	emitter := newEmitter(t, "go", nil)

	assert.Equal(t,
		"pigment.RGBA{R: 1.0, G: 0.0, B: 0.0, A: 1.0}",
		emitter.Emit(RGBA{R: 1, G: 0, B: 0, A: 1}))
	assert.Equal(t,
		"pigment.RGBA{R: 0.5, G: 0.25, B: 0.0, A: 0.75}",
		emitter.Emit(RGBA{R: 0.5, G: 0.25, B: 0, A: 0.75}))
}

func TestGoEmitterPackage(t *testing.T) {
	emitter := newEmitter(t, "go", func(cfg *Config) {
		cfg.SetString("emit.go_package", "theme")
	})
	assert.Equal(t,
		"theme.RGBA{R: 0.0, G: 0.0, B: 0.0, A: 0.0}",
		emitter.Emit(Fallback))
}

func TestGoEmitterPrecision(t *testing.T) {
	emitter := newEmitter(t, "go", func(cfg *Config) {
		cfg.SetInt("emit.precision", 3)
	})
	assert.Equal(t,
		"pigment.RGBA{R: 1.000, G: 0.500, B: 0.000, A: 1.000}",
		emitter.Emit(RGBA{R: 1, G: 0.5, B: 0, A: 1}))
}

func TestGoEmitterClamp(t *testing.T) {
	overdriven := RGBA{R: 1.5, G: -0.5, B: 0, A: 1}

	emitter := newEmitter(t, "go", nil)
	assert.Equal(t,
		"pigment.RGBA{R: 1.5, G: -0.5, B: 0.0, A: 1.0}",
		emitter.Emit(overdriven))

	emitter = newEmitter(t, "go", func(cfg *Config) {
		cfg.SetBool("emit.clamp", true)
	})
	assert.Equal(t,
		"pigment.RGBA{R: 1.0, G: 0.0, B: 0.0, A: 1.0}",
		emitter.Emit(overdriven))
}

func TestCSSEmitter(t *testing.T) {
	emitter := newEmitter(t, "css", nil)

	assert.Equal(t, "rgba(255, 128, 0, 1.0)", emitter.Emit(RGBA{R: 1, G: 0.5, B: 0, A: 1}))
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", emitter.Emit(RGBA{R: 0, G: 0, B: 0, A: 0.5}))

	// css has no out-of-gamut channels
	assert.Equal(t, "rgba(255, 0, 0, 1.0)", emitter.Emit(RGBA{R: 1.5, G: -0.5, B: 0, A: 1}))
}

func TestGLSLEmitter(t *testing.T) {
	emitter := newEmitter(t, "glsl", nil)
	assert.Equal(t, "vec4(1.0, 0.5, 0.0, 1.0)", emitter.Emit(RGBA{R: 1, G: 0.5, B: 0, A: 1}))

	emitter = newEmitter(t, "glsl", func(cfg *Config) {
		cfg.SetInt("emit.precision", 2)
	})
	assert.Equal(t, "vec4(0.32, 0.64, 0.80, 1.00)", emitter.Emit(RGBA{R: 0.32, G: 0.64, B: 0.8, A: 1}))
}

func TestNewEmitterUnknownTarget(t *testing.T) {
	_, err := NewEmitter("swift", NewConfig())
	require.Error(t, err)
	assert.EqualError(t, err, "output target `swift` not supported")
}
