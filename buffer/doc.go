// Package buffer implements the single-line edit model behind sprig's text
// input: a sequence of grapheme clusters plus one Cursor.
//
// Positions are 0-based grapheme indexes. Index i sits before the i-th
// grapheme; Len() is the position after the last one.
//
// Every mutating operation reports whether it changed anything. Out-of-range
// requests are clamped or ignored, never reported as errors, so callers can
// use the result to decide whether a redraw is needed.
package buffer
