package filter

// Panel is the filter UI state machine: closed, or open focused on one
// section ("all" reveals every section at once). Edits touch only the
// draft; Apply commits a copy upward and closes, ClearAll resets the
// draft without committing.
type Panel struct {
	open    bool
	focused Section
	draft   Draft
	applied Draft
	onApply func(Draft)
}

func NewPanel(onApply func(Draft)) *Panel {
	return &Panel{
		draft:   DefaultDraft(),
		applied: DefaultDraft(),
		onApply: onApply,
	}
}

// Open focuses one filter section; the draft starts from the last
// committed state.
func (p *Panel) Open(section Section) {
	p.open = true
	p.focused = section
	p.draft = p.applied.clone()
}

func (p *Panel) IsOpen() bool     { return p.open }
func (p *Panel) Focused() Section { return p.focused }

// VisibleSections lists what the open panel shows.
func (p *Panel) VisibleSections() []Section {
	if !p.open {
		return nil
	}
	if p.focused == SectionAll {
		return []Section{SectionSort, SectionCategory, SectionOffers, SectionService}
	}
	return []Section{p.focused}
}

func (p *Panel) Draft() *Draft  { return &p.draft }
func (p *Panel) Applied() Draft { return p.applied.clone() }

// Apply commits the draft and closes the panel.
func (p *Panel) Apply() {
	p.applied = p.draft.clone()
	p.open = false
	if p.onApply != nil {
		p.onApply(p.applied.clone())
	}
}

// ClearAll resets the draft to defaults. Nothing is committed until the
// user hits Apply.
func (p *Panel) ClearAll() {
	p.draft = DefaultDraft()
}

// Close abandons the draft.
func (p *Panel) Close() {
	p.open = false
	p.draft = p.applied.clone()
}

func (d Draft) clone() Draft {
	out := d
	out.Categories = append([]uint(nil), d.Categories...)
	return out
}
