package seq

import "fmt"

// String returns "<>" for the empty sequence, and "<head,...>" otherwise. The
// tail is never printed, so the cost does not depend on the length of s.
//
// String has a pointer receiver so that a nil *Seq prints as "<>". To print a
// Seq value with the fmt package, pass its address: fmt.Println(&s).
func (s *Seq[T]) String() string {
	if s.IsEmpty() {
		return "<>"
	}
	return fmt.Sprintf("<%v,...>", s.head)
}
