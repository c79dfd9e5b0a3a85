package dashboard

import (
	"context"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// PanelBuilder turns a stored panel model into a panel node keyed for id.
type PanelBuilder func(model *entity.Panel, id int) (*VizPanel, error)

// LibraryPanelItemState positions a library panel reference.
type LibraryPanelItemState struct {
	Rect
	PanelID int
	UID     string
	Name    string
	// Title is the title written on the reference record.
	Title    string
	Body     *VizPanel
	IsLoaded bool
	Error    string
}

// LibraryPanelItem is a placeholder that fetches its panel definition
// after construction.
type LibraryPanelItem struct {
	scene.Base[LibraryPanelItemState]

	build PanelBuilder
}

// NewLibraryPanelItem creates a library panel placeholder. build turns the
// fetched model into the hosted panel.
func NewLibraryPanelItem(key string, state LibraryPanelItemState, build PanelBuilder) *LibraryPanelItem {
	l := &LibraryPanelItem{build: build}
	l.Init(l, key, state)
	l.AddActivationHandler(l.onActivate)
	return l
}

func (l *LibraryPanelItem) gridChild()  {}
func (l *LibraryPanelItem) layoutItem() {}

// Children implements scene.Object.
func (l *LibraryPanelItem) Children() []scene.Object {
	return scene.AppendObjects(nil, l.State().Body)
}

// Rect implements GridChild.
func (l *LibraryPanelItem) Rect() Rect { return l.State().Rect }

// SetRect implements GridChild.
func (l *LibraryPanelItem) SetRect(r Rect) {
	s := l.State()
	s.Rect = r
	l.SetGeneratedState(s)
}

// Panel implements LayoutItem.
func (l *LibraryPanelItem) Panel() *VizPanel { return l.State().Body }

func (l *LibraryPanelItem) onActivate() func() {
	if l.State().IsLoaded {
		return nil
	}
	env := scene.EnvironmentOf(l)
	if env.LibraryPanels == nil {
		return nil
	}
	loader := env.LibraryPanels
	uid := l.State().UID

	ctx, cancel := context.WithCancel(env.Ctx())
	env.Go(ctx, func(ctx context.Context) func() {
		lp, err := loader.LoadLibraryPanel(ctx, uid)
		return func() { l.applyLoaded(lp, err) }
	})
	return cancel
}

func (l *LibraryPanelItem) applyLoaded(lp *entity.LibraryPanel, err error) {
	env := scene.EnvironmentOf(l)
	s := l.State()

	var body *VizPanel
	if err == nil && (lp == nil || lp.Model == nil) {
		err = fmt.Errorf("library panel %s has no model", s.UID)
	}
	if err == nil {
		body, err = l.build(lp.Model, s.PanelID)
	}
	if err != nil {
		env.Logger().Warn().Err(err).Str("library_panel_uid", s.UID).Msg("library panel load failed")
		env.Notify(port.NotificationError, "Failed to load library panel", err.Error())
		s.Error = err.Error()
		s.Body = l.placeholder(err)
		l.SetGeneratedState(s)
		return
	}

	if s.Name == "" {
		s.Name = lp.Name
	}
	s.Error = ""
	s.Body = body
	s.IsLoaded = true
	l.SetGeneratedState(s)
}

func (l *LibraryPanelItem) placeholder(err error) *VizPanel {
	s := l.State()
	title := s.Title
	if title == "" {
		title = s.Name
	}
	return NewVizPanel(PanelKey(s.PanelID), VizPanelState{
		Title:    title,
		PluginID: "text",
		Error:    err.Error(),
	})
}

func (l *LibraryPanelItem) clone(key string) *LibraryPanelItem {
	s := l.State()
	if s.Body != nil {
		s.Body = s.Body.clone(s.Body.Key())
	}
	return NewLibraryPanelItem(key, s, l.build)
}
