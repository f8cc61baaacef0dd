// Package history models the browser history stack the navigation
// controller keeps itself consistent with.
package history

// Stack is a cursor over an ordered list of visited paths. Push truncates
// any forward entries, exactly like a browser history push after going
// back.
type Stack struct {
	entries []string
	cursor  int
}

func NewStack(initial string) *Stack {
	return &Stack{entries: []string{initial}}
}

func (s *Stack) Push(path string) {
	s.entries = append(s.entries[:s.cursor+1], path)
	s.cursor = len(s.entries) - 1
}

func (s *Stack) Current() string {
	return s.entries[s.cursor]
}

// Back moves the cursor one entry toward the oldest and reports the path it
// lands on. It reports false at the oldest entry.
func (s *Stack) Back() (string, bool) {
	if s.cursor == 0 {
		return "", false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Forward is the inverse of Back.
func (s *Stack) Forward() (string, bool) {
	if s.cursor == len(s.entries)-1 {
		return "", false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Len is the number of entries, including ones ahead of the cursor.
func (s *Stack) Len() int {
	return len(s.entries)
}
