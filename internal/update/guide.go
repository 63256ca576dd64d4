package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihokang/ddtd/internal/catalog"
	"github.com/jihokang/ddtd/internal/views"
)

func (m Model) handleGuideKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "l", "right":
		m.setGuidePage(m.Guide.Index + 1)
	case "h", "left":
		m.setGuidePage(m.Guide.Index - 1)
	case "j", "down":
		m.guideViewport.SetYOffset(m.guideViewport.YOffset + 1)
	case "k", "up":
		if m.guideViewport.YOffset > 0 {
			m.guideViewport.SetYOffset(m.guideViewport.YOffset - 1)
		}
	}
	return m
}

func (m *Model) setGuidePage(index int) {
	if len(m.Guide.Slugs) == 0 {
		m.guideViewport.SetContent(views.RenderMarkdown("# Guide\n\nNo guides installed."))
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.Guide.Slugs) {
		index = len(m.Guide.Slugs) - 1
	}
	m.Guide.Index = index
	page, _ := catalog.Guide(m.Guide.Slugs[index])
	m.guideViewport.SetContent(views.RenderMarkdown(page.Markdown))
	m.guideViewport.SetYOffset(0)
}

func (m Model) renderGuideView() string {
	selected := ""
	if len(m.Guide.Slugs) > 0 {
		selected = m.Guide.Slugs[m.Guide.Index]
	}
	return views.RenderGuidePanel(views.GuidePanelData{
		Slugs:        m.Guide.Slugs,
		SelectedSlug: selected,
		Title:        selected,
		BodyView:     m.guideViewport.View(),
	})
}
