// Package input provides a single-line Bubble Tea text input backed by the
// buffer package.
//
// The package binds key presses, left clicks and blink ticks to buffer
// operations, renders the cursor in one of three shapes, scrolls long text
// horizontally so the cursor stays visible, and reports edits, submits and
// cancels through typed signals.
//
// Mouse coordinates passed to Update are widget-local: (0,0) is the first
// cell of the left padding.
package input
