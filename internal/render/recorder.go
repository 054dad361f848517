package render

// Recorder is a Target that keeps the latest content of every region and a
// log of calls. It also satisfies the navigation scroller.
type Recorder struct {
	Title     string
	Tabs      []TabView
	Checklist ChecklistView
	Header    DayHeader
	Content   DayContent
	Error     *ErrorPanel
	Scrolls   int
	Calls     []string
}

var _ Target = (*Recorder)(nil)

// SetTitle records the page title.
func (r *Recorder) SetTitle(title string) {
	r.Calls = append(r.Calls, "SetTitle")
	r.Title = title
}

// SetTabs records a copy of the tab strip.
func (r *Recorder) SetTabs(tabs []TabView) {
	r.Calls = append(r.Calls, "SetTabs")
	r.Tabs = append([]TabView(nil), tabs...)
}

// SetActiveTab marks the tab at index active.
func (r *Recorder) SetActiveTab(index int) {
	r.Calls = append(r.Calls, "SetActiveTab")
	for i := range r.Tabs {
		r.Tabs[i].Active = i == index
	}
}

// SetChecklist records the checklist region.
func (r *Recorder) SetChecklist(list ChecklistView) {
	r.Calls = append(r.Calls, "SetChecklist")
	r.Checklist = list
}

// SetDayHeader records the day header.
func (r *Recorder) SetDayHeader(header DayHeader) {
	r.Calls = append(r.Calls, "SetDayHeader")
	r.Header = header
}

// SetDayContent records the day content and clears any error.
func (r *Recorder) SetDayContent(content DayContent) {
	r.Calls = append(r.Calls, "SetDayContent")
	r.Content = content
	r.Error = nil
}

// ShowError records the error panel in place of the day content.
func (r *Recorder) ShowError(panel ErrorPanel) {
	r.Calls = append(r.Calls, "ShowError")
	r.Content = DayContent{}
	r.Error = &panel
}

// ScrollToTop counts scroll requests.
func (r *Recorder) ScrollToTop() {
	r.Calls = append(r.Calls, "ScrollToTop")
	r.Scrolls++
}

// ActiveTabs returns the indices of tabs currently marked active.
func (r *Recorder) ActiveTabs() []int {
	var active []int
	for i, tab := range r.Tabs {
		if tab.Active {
			active = append(active, i)
		}
	}
	return active
}
