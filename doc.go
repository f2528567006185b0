// Package codize renders trees of logical code fragments into indented
// text. Callers describe the shape of the output (lines, blocks, separated
// lists, concatenations) and the engine walks the tree once, producing an
// ordered sequence of lines.
//
// Does: indentation, single-line collapsing (inlining), cascading
// continuation joins ("} else {"), separator and trailing-separator rules.
// Does not: parse or validate the emitted text, know anything about the
// target language, or stream output.
package codize
