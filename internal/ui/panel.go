package ui

// Panel hosts a View inside a layout.
type Panel struct {
	ID   string
	View View
}
