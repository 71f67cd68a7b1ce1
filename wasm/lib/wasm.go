//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/pigmentlang/pigment"
)

func register() {
	obj := js.Global().Get("Object").New()

	// constants
	kinds := js.Global().Get("Object").New()
	for _, k := range []pigment.DiagnosticKind{
		pigment.DiagnosticKind_MissingArgument,
		pigment.DiagnosticKind_MissingLabel,
		pigment.DiagnosticKind_UnknownLabel,
		pigment.DiagnosticKind_UnexpectedArgumentCount,
		pigment.DiagnosticKind_HexNonStringLiteral,
		pigment.DiagnosticKind_HexInterpolatedString,
		pigment.DiagnosticKind_HexEmpty,
		pigment.DiagnosticKind_HexUnsupportedLength,
		pigment.DiagnosticKind_HexInvalidCharacter,
		pigment.DiagnosticKind_InvalidNumericLiteral,
		pigment.DiagnosticKind_ValueOutOfRange,
	} {
		kinds.Set(k.String(), int(k))
	}
	obj.Set("DiagnosticKind", kinds)

	// expand rewrites every color literal in the input.
	//
	// JS signature:
	//   expand(input: string, cfg?: object)
	obj.Set("expand", keep(js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return jsErr("expand(input: string, cfg?: object): missing input")
		}
		input := args[0].String()

		cfg := pigment.NewConfig()
		if len(args) >= 2 && args[1].Type() == js.TypeObject {
			if err := applyConfig(cfg, args[1]); err != nil {
				return jsErr(err.Error())
			}
		}
		expander, err := pigment.NewExpander(cfg)
		if err != nil {
			return jsErr(err.Error())
		}
		output, diags, err := expander.Expand(input)
		if err != nil {
			return jsErr(err.Error())
		}
		r := js.Global().Get("Object").New()
		r.Set("output", output)
		r.Set("diagnostics", jsDiagnostics(diags))
		return jsOK(r)
	})))

	// resolve evaluates a single color literal into its channels.
	//
	// JS signature:
	//   resolve(source: string)
	obj.Set("resolve", keep(js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return jsErr("resolve(source: string): missing source")
		}
		parser := pigment.NewInvocationParser(args[0].String())
		inv, err := parser.NextInvocation()
		if err != nil {
			return jsErr(err.Error())
		}
		if inv == nil {
			return jsErr("no color literal found in source")
		}
		color, diag := pigment.Resolve(inv)
		if diag != nil {
			return jsErr(diag.FormatCLI())
		}
		r := js.Global().Get("Object").New()
		r.Set("r", color.R)
		r.Set("g", color.G)
		r.Set("b", color.B)
		r.Set("a", color.A)
		return jsOK(r)
	})))

	js.Global().Set("Pigment", obj)
}

func jsDiagnostics(diags []pigment.Diagnostic) js.Value {
	arr := js.Global().Get("Array").New()
	for i, d := range diags {
		o := js.Global().Get("Object").New()
		o.Set("kind", int(d.Kind))
		o.Set("code", d.Kind.String())
		o.Set("message", d.Message)
		o.Set("line", d.Span.Start.Line+1)
		o.Set("column", d.Span.Start.Column+1)
		arr.SetIndex(i, o)
	}
	return arr
}

func applyConfig(cfg *pigment.Config, opts js.Value) error {
	if opts.IsNull() || opts.IsUndefined() || opts.Type() != js.TypeObject {
		return nil
	}
	keys := js.Global().Get("Object").Call("keys", opts)
	for i := 0; i < keys.Length(); i++ {
		k := keys.Index(i).String()
		v := opts.Get(k)
		switch v.Type() {
		case js.TypeBoolean:
			cfg.SetBool(k, v.Bool())
		case js.TypeNumber:
			cfg.SetInt(k, v.Int())
		case js.TypeString:
			cfg.SetString(k, v.String())
		default:
			return fmt.Errorf("unsupported config value type for %q", k)
		}
	}
	return nil
}

func jsOK(v any) js.Value {
	o := js.Global().Get("Object").New()
	o.Set("ok", true)
	o.Set("value", v)
	return o
}

func jsErr(msg string) js.Value {
	o := js.Global().Get("Object").New()
	o.Set("ok", false)
	o.Set("error", msg)
	return o
}
