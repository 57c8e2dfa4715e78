package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/widgets"
)

// Premium lists the paid features and plans. Choosing a plan or starting the
// trial only reports back on the status bar; there is no billing.
type Premium struct {
	cat  *catalog.Catalog
	plan int
}

func NewPremium(cat *catalog.Catalog) *Premium {
	p := &Premium{cat: cat}
	p.plan = p.popularPlan()
	return p
}

func (p *Premium) ID() core.ScreenID { return core.ScreenPremium }
func (p *Premium) Title() string { return "Premium" }
func (p *Premium) Scope() string { return core.ScopePremium }

func (p *Premium) popularPlan() int {
	for i, plan := range p.cat.Premium.Plans {
		if plan.Popular {
			return i
		}
	}
	return 0
}

// SelectedPlan is the highlighted plan.
func (p *Premium) SelectedPlan() (catalog.Plan, bool) {
	plans := p.cat.Premium.Plans
	if p.plan < 0 || p.plan >= len(plans) {
		return catalog.Plan{}, false
	}
	return plans[p.plan], true
}

func (p *Premium) Enter(*core.Model) tea.Cmd {
	p.plan = p.popularPlan()
	return nil
}

func (p *Premium) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys, scope := m.Keys(), p.Scope()
	n := len(p.cat.Premium.Plans)
	switch {
	case keys.IsAction(km, "option-prev", scope):
		p.plan = step(p.plan, -1, n)
	case keys.IsAction(km, "option-next", scope):
		p.plan = step(p.plan, 1, n)
	case keys.IsAction(km, "choose-plan", scope):
		plan, ok := p.SelectedPlan()
		if !ok {
			return nil
		}
		m.SetStatus(fmt.Sprintf("%s plan selected (%s%s). Checkout is not available yet.", plan.Name, plan.Price, plan.Period))
	case keys.IsAction(km, "start-trial", scope):
		m.SetStatus("Free trial requested. We'll let you know when Premium opens.")
	}
	return nil
}

func (p *Premium) View(m *core.Model, width, height int) string {
	pr := p.cat.Premium
	parts := []string{
		headlineStyle.Render("★ " + pr.Headline),
		mutedStyle.Render(pr.Tagline),
		"",
	}

	features := make([]widgets.Widget, 0, len(pr.Features))
	for _, f := range pr.Features {
		features = append(features, widgets.Card{Title: f.Title, Content: mutedStyle.Render(f.Description), Highlight: f.Highlight, Selected: f.Highlight})
	}
	if len(features) > 0 {
		parts = append(parts, widgets.Grid{Widgets: features, Columns: 3, MinCellWidth: 24, CellHeight: 5, Gap: 1}.Render(width, height))
	}

	plans := make([]widgets.Widget, 0, len(pr.Plans))
	for i, plan := range pr.Plans {
		title := plan.Name
		if plan.Popular {
			title += "  " + warnStyle.Render("Most Popular")
		}
		body := labelStyle.Render(plan.Price) + mutedStyle.Render(plan.Period)
		if plan.Discount != "" {
			body += "  " + accentStyle.Render(plan.Discount)
		}
		plans = append(plans, widgets.Card{Title: title, Content: body, Selected: i == p.plan})
	}
	if len(plans) > 0 {
		parts = append(parts, labelStyle.Render("Choose Your Plan"), widgets.HStack{Widgets: plans, Gap: 1}.Render(width, 4))
	}

	parts = append(parts,
		"",
		labelStyle.Render(pr.CTA.Title),
		mutedStyle.Render(pr.CTA.Body),
		button(pr.CTA.Button, true, false)+"  "+mutedStyle.Render("t")+"   "+mutedStyle.Render(pr.CTA.Note),
		"",
		mutedStyle.Render(`"`+pr.Testimonial.Quote+`"`),
		mutedStyle.Render("- "+pr.Testimonial.Author),
	)
	return widgets.Text(strings.Join(parts, "\n")).Render(width, height)
}
