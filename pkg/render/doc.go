// Package render holds the output formats shared by the renderers.
//
// # Formats
//
// A [Format] names one artifact kind:
//
//   - [FormatDOT]: Graphviz source text
//   - [FormatSVG]: vector image rendered in-process by Graphviz
//   - [FormatPNG]: raster image rendered in-process by Graphviz
//
// The [nodelink] subpackage produces all three for networks and for their
// decomposition trees.
package render
