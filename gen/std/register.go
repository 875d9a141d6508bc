package std

import "github.com/reoring/movebind"

// Register adds every standard library binding to l.
func Register(l *movebind.Loader) {
	l.Register(String, ASCIIString, Option)
}
