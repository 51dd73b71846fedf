package hrm

import (
	"github.com/iota-uz/staffcal/pkg/types"
)

var CalendarLink = types.NavigationItem{
	Name: "NavigationLinks.Calendar",
	Href: "/hrm/calendar",
}

var NavItems = []types.NavigationItem{
	CalendarLink,
}
