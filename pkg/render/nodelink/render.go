package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/render"
)

// Engine selects the Graphviz layout program.
type Engine string

const (
	// EngineDot ranks nodes top-down. Used for decomposition trees.
	EngineDot Engine = "dot"
	// EngineNeato is a spring layout that honors pinned positions. Used for
	// networks.
	EngineNeato Engine = "neato"
)

func (e Engine) layout() graphviz.Layout {
	if e == EngineNeato {
		return graphviz.NEATO
	}
	return graphviz.DOT
}

// Render lays out dot with engine and encodes the result as f. FormatDOT
// returns the source unchanged.
func Render(ctx context.Context, dot string, engine Engine, f render.Format) ([]byte, error) {
	var gf graphviz.Format
	switch f {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		gf = graphviz.SVG
	case render.FormatPNG:
		gf = graphviz.PNG
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(engine.layout())

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gf, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	if f == render.FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// RenderSVG renders dot to SVG.
func RenderSVG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	return Render(ctx, dot, engine, render.FormatSVG)
}

// RenderPNG renders dot to PNG.
func RenderPNG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	return Render(ctx, dot, engine, render.FormatPNG)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="(-?[0-9.]+)\s+(-?[0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg element with one whose viewBox
// starts at the origin and whose size matches the drawing.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
