// Package planarity estimates how planar a network and its current drawing are.
//
// Two independent signals are provided:
//
//   - [CountCrossings] counts pairs of non-adjacent active edges whose straight
//     segments intersect in the current node positions.
//   - [CheckPlanarity] applies Euler's edge bound (E <= 3V - 6) and then
//     inspects the current drawing.
//
// Neither is an exact planarity test. A graph that passes the edge bound but
// whose drawing has crossings is still reported as planar, with a message
// saying only the bound passed. Only the edge bound can produce a non-planar
// verdict.
package planarity
