// Package gen is the source of truth for internal/resolve's generated
// global-member table (spec.md §6: "the host-runtime globals enumerated in
// its member list" — authoritative, must be matched exactly by the
// renderer's fallback resolution rule). It owns the member lists as plain
// Go data and renders internal/resolve/builtins_table.go from them with
// dave/jennifer, the same code-generation library the donor uses to emit
// its own generated struct/helper files.
package gen

import "github.com/dave/jennifer/jen"

// GlobalRuntimeMembers is the flat set of names the host sketch engine
// exposes directly on $p: drawing state and primitives, transforms, color,
// math, typography, image I/O, system variables and lifecycle functions,
// plus the synthetic `__`-prefixed names exprxform's bare-event-name and
// primitive-parse rewrites introduce.
var GlobalRuntimeMembers = []string{
	// drawing primitives
	"background", "fill", "noFill", "stroke", "noStroke", "strokeWeight",
	"strokeCap", "strokeJoin", "rect", "ellipse", "circle", "line", "point",
	"triangle", "quad", "arc", "bezier", "bezierVertex", "curve", "curveVertex",
	"beginShape", "endShape", "vertex", "rectMode", "ellipseMode", "smooth",
	"noSmooth", "clip", "noClip",

	// transforms
	"pushMatrix", "popMatrix", "pushStyle", "popStyle", "translate", "rotate",
	"scale", "shearX", "shearY", "resetMatrix", "applyMatrix",

	// color
	"color", "red", "green", "blue", "alpha", "hue", "saturation", "brightness",
	"lerpColor", "colorMode", "blendColor",

	// math
	"sin", "cos", "tan", "asin", "acos", "atan", "atan2", "sqrt", "pow", "abs",
	"min", "max", "constrain", "map", "dist", "lerp", "mag", "norm", "degrees",
	"radians", "floor", "ceil", "round", "exp", "log", "random", "randomSeed",
	"randomGaussian", "noise", "noiseSeed", "noiseDetail",

	// typography
	"text", "textFont", "textSize", "textAlign", "textWidth", "textLeading",
	"textAscent", "textDescent", "loadFont", "createFont",

	// image
	"loadImage", "image", "imageMode", "createImage", "tint", "noTint", "get",
	"set", "copy", "save", "createGraphics", "loadPixels", "updatePixels",

	// system variables (read as bare properties, not called)
	"width", "height", "mouseX", "mouseY", "pmouseX", "pmouseY", "mouseButton",
	"key", "keyCode", "pixels", "focused", "displayWidth", "displayHeight",

	// lifecycle / system functions
	"size", "createCanvas", "noLoop", "loop", "redraw", "exit", "println",
	"print", "delay", "millis", "second", "minute", "hour", "day", "month", "year",

	// primitive-coercion and synthetic names introduced by exprxform's own
	// rewrite passes (rewritePrimitiveParseCalls, rewriteBareEventNames,
	// the Java-interop method-rename table)
	"parseBoolean", "parseByte", "parseChar", "parseFloat", "parseInt",
	"__replace", "__replaceAll", "__replaceFirst", "__contains", "__equals",
	"__equalsIgnoreCase", "__hashCode", "__toCharArray", "__split",
	"__startsWith", "__endsWith", "__codePointAt", "__matches", "__instanceof",
	"__printStackTrace", "__frameRate", "__keyPressed", "__mousePressed",
}

// PConstantsMembers is spec.md §6's nested PConstants scope: Processing's
// named mode and geometry constants.
var PConstantsMembers = []string{
	"PI", "TWO_PI", "HALF_PI", "QUARTER_PI", "TAU",
	"CENTER", "CORNER", "CORNERS", "RADIUS",
	"RGB", "HSB", "ALPHA",
	"CLOSE", "OPEN", "ROUND", "SQUARE", "PROJECT", "MITER", "BEVEL",
	"LEFT", "RIGHT", "TOP", "BOTTOM", "BASELINE", "NORMAL", "ITALIC", "BOLD",
}

// Generate renders internal/resolve/builtins_table.go's source text from
// the member lists above.
func Generate() (string, error) {
	f := jen.NewFile("resolve")
	f.HeaderComment("Code generated by cmd/gen-builtins from internal/gen. DO NOT EDIT.")

	f.Var().Id("globalRuntimeMembers").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, m := range GlobalRuntimeMembers {
			g.Lit(m)
		}
	})

	f.Var().Id("pConstantsMembers").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, m := range PConstantsMembers {
			g.Lit(m)
		}
	})

	return f.GoString(), nil
}
