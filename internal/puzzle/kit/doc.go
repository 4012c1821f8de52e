// Package kit is the toolbox shared by the puzzle solutions: input splitting,
// integer extraction, 2D points and grids, and small number helpers.
package kit
