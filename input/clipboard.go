package input

// Clipboard provides paste integration.
//
// Read errors must not crash the UI; they are logged and the paste is dropped.
type Clipboard interface {
	ReadText() (string, error)
}
