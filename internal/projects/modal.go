package projects

// ScrollLock suppresses scrolling of the page behind the detail view.
// Modal calls Lock and Unlock strictly in pairs.
type ScrollLock interface {
	Lock()
	Unlock()
}

type noScrollLock struct{}

func (noScrollLock) Lock()   {}
func (noScrollLock) Unlock() {}

// Target is the element a click landed on while the view is open.
type Target int

const (
	// TargetContent is anywhere inside the detail view itself.
	TargetContent Target = iota
	// TargetBackdrop is the dimmed area around the detail view.
	TargetBackdrop
	// TargetCloseButton is the view's close control.
	TargetCloseButton
)

// Modal owns the open/closed state of the project detail view. At most
// one project is rendered at a time. A Modal is not safe for concurrent
// use; each host (page request, terminal session) owns its own.
type Modal struct {
	catalog *Catalog
	scroll  ScrollLock

	open bool
	view View
}

// NewModal returns a closed modal over catalog. A nil scroll lock is
// replaced by one that does nothing.
func NewModal(catalog *Catalog, scroll ScrollLock) *Modal {
	if scroll == nil {
		scroll = noScrollLock{}
	}
	return &Modal{catalog: catalog, scroll: scroll}
}

// Open shows the project id, replacing whatever is shown. An unknown id
// returns ErrNotFound and leaves the modal untouched.
func (m *Modal) Open(id string) error {
	rec, err := m.catalog.Get(id)
	if err != nil {
		return err
	}
	m.view = Render(rec)
	if !m.open {
		m.open = true
		m.scroll.Lock()
	}
	return nil
}

// Close hides the view and releases the scroll lock. Closing a closed
// modal does nothing.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.view = View{}
	m.scroll.Unlock()
}

// Dismiss handles a click while the view is shown. Clicks on the
// backdrop or the close button close it; clicks inside the content do
// not.
func (m *Modal) Dismiss(t Target) {
	switch t {
	case TargetBackdrop, TargetCloseButton:
		m.Close()
	}
}

// IsOpen reports whether a project is shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// View returns the shown project, if any.
func (m *Modal) View() (View, bool) {
	if !m.open {
		return View{}, false
	}
	v := m.view
	v.Results = copyStrings(v.Results)
	v.Technologies = copyStrings(v.Technologies)
	return v, true
}
