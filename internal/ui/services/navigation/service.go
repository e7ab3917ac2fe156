package navigation

// Service keeps a cursor on a list whose length can change underneath it
type Service struct {
	state   State
	countFn func() int // current number of rows
}

// NewService creates a navigation service showing height rows at a time
func NewService(height int, countFn func() int) *Service {
	s := &Service{countFn: countFn}
	s.SetViewportHeight(height)
	return s
}

// Cursor returns the current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns the number of visible rows
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// State returns a copy of the navigation state
func (s *Service) State() State {
	return s.state
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.Clamp()
}

// Navigate moves the cursor in a direction
func (s *Service) Navigate(direction Direction) {
	pageSize := s.state.ViewportHeight - 1
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= pageSize
		// Also scroll viewport up
		s.state.ViewportOffset -= pageSize
	case DirectionPageDown:
		s.state.Cursor += pageSize
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.maxIndex()
	}
	s.Clamp()
}

// Reset moves the cursor back to the first row
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Clamp keeps the cursor on an existing row and inside the viewport
func (s *Service) Clamp() {
	maxIndex := s.maxIndex()
	if s.state.Cursor > maxIndex {
		s.state.Cursor = maxIndex
	}
	if s.state.Cursor < 0 {
		s.state.Cursor = 0
	}
	s.ensureVisible()
}

func (s *Service) maxIndex() int {
	if s.countFn == nil {
		return 0
	}
	if n := s.countFn(); n > 0 {
		return n - 1
	}
	return 0
}

func (s *Service) ensureVisible() {
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
