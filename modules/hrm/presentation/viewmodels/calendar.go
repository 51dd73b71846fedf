package viewmodels

// DayColumn is one date column of the grid header.
type DayColumn struct {
	Date         string // ISO YYYY-MM-DD
	Day          int
	IsToday      bool
	IsMonthStart bool
}

// MonthHeader spans DayCount columns in the sticky header row.
type MonthHeader struct {
	Label    string
	Year     int
	DayCount int
}

// DayCell is one employee/date cell.
type DayCell struct {
	Date      string
	Type      string
	Label     string
	Color     string
	IsWorking bool
	IsToday   bool
}

// EmployeeRow is one grid row: the employee column plus one cell per date.
type EmployeeRow struct {
	EmployeeID string
	FullName   string
	Position   string
	Cells      []DayCell
}

// CalendarGrid is everything the grid template renders. Tag travels to the
// client and back on every HTMX request so stale row batches can be told
// apart from current ones.
type CalendarGrid struct {
	Tag          string
	AnchorYear   int
	Span         int
	Search       string
	Months       []MonthHeader
	Days         []DayColumn
	Rows         []EmployeeRow
	RowOffset    int
	TotalCount   int
	ShowSentinel bool
	NextPage     int
	TodayColumn  int // -1 when today is outside the interval
}

// CellDetail backs the popover shown when a grid cell is clicked.
type CellDetail struct {
	FullName  string
	Position  string
	Date      string
	Label     string
	Type      string
	Color     string
	IsWorking bool
}

// TypeCount is one legend entry of the employee detail: how many days of a
// classification fall inside the visible interval.
type TypeCount struct {
	Label string
	Color string
	Count int
}

// EmployeeDetail backs the popover shown when an employee row is clicked.
type EmployeeDetail struct {
	EmployeeID string
	FullName   string
	Position   string
	Counts     []TypeCount
}

// MiniMonth is one month block of the day-off picker calendar. LeadingBlanks
// pads the first week so day 1 lands on its weekday column (Monday first).
type MiniMonth struct {
	Label         string
	Year          int
	LeadingBlanks int
	Days          []DayCell
}

// MiniCalendar backs the day-off picker dialog.
type MiniCalendar struct {
	Months []MiniMonth
}
