package main

// NavItem is one in-page navigation target.
type NavItem struct {
	ID    string
	Label string
}

// Href is the in-page anchor for the item.
func (n NavItem) Href() string {
	return "#" + n.ID
}

var NavItems = []NavItem{
	{ID: "projects", Label: "Projects"},
	{ID: "experience", Label: "Experience"},
	{ID: "skills", Label: "Skills"},
}

// ContactNavItem is shown apart from NavItems as a call to action.
var ContactNavItem = NavItem{ID: "contact", Label: "Contact"}

func findNavItem(id string) (NavItem, bool) {
	if id == ContactNavItem.ID {
		return ContactNavItem, true
	}
	for _, item := range NavItems {
		if item.ID == id {
			return item, true
		}
	}
	return NavItem{}, false
}

// NavOverlay is the open/closed state of the mobile menu. The zero value is
// closed. It lives for a single request and is never persisted.
type NavOverlay struct {
	open bool
}

func (n *NavOverlay) Open() {
	n.open = true
}

func (n *NavOverlay) Close() {
	n.open = false
}

func (n *NavOverlay) IsOpen() bool {
	return n.open
}

// Activate follows a navigation link. The overlay is closed whether or not
// id names a known item.
func (n *NavOverlay) Activate(id string) (NavItem, bool) {
	n.Close()
	return findNavItem(id)
}
