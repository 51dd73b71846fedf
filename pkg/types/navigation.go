package types

// NavigationItem is a sidebar entry registered by a module.
type NavigationItem struct {
	Name     string
	Href     string
	Icon     string
	Children []NavigationItem
}
