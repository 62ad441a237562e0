package dombinding

import (
	"fmt"
	"strings"

	"honnef.co/go/js/dom"

	"github.com/nopoh28102/boot2/visibility"
)

const (
	FormID              = "templateForm"
	SyncMediaTypeAttr   = "data-sync-media-type"
	displayVisible      = "block"
	displayHidden       = "none"
	changeEventName     = "change"
	displayPropertyName = "display"
)

// Page adapts the template form document to the visibility controller.
type Page struct {
	document dom.Document
}

func NewPage(document dom.Document) *Page {
	return &Page{document: document}
}

func (p *Page) element(region visibility.Region) dom.Element {
	return p.document.GetElementByID(string(region))
}

// Check reports every region the page template failed to provide.
func (p *Page) Check() error {
	var missing []string
	for _, region := range visibility.Regions {
		if p.element(region) == nil {
			missing = append(missing, string(region))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", visibility.ErrMissingElement, strings.Join(missing, ", "))
	}
	return nil
}

type selectValue struct {
	element *dom.HTMLSelectElement
}

func (s selectValue) Value() string {
	return s.element.Value
}

func (p *Page) Selector(region visibility.Region) (visibility.Selector, error) {
	selectElement, ok := p.element(region).(*dom.HTMLSelectElement)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a select element", visibility.ErrMissingElement, region)
	}
	return selectValue{element: selectElement}, nil
}

func (p *Page) SetVisible(region visibility.Region, visible bool) {
	htmlElement, ok := p.element(region).(dom.HTMLElement)
	if !ok {
		println("Unable to set visibility of element: ", string(region))
		return
	}

	display := displayHidden
	if visible {
		display = displayVisible
	}
	htmlElement.Style().SetProperty(displayPropertyName, display, "")
}

func (p *Page) OnChange(region visibility.Region, handler func()) {
	p.element(region).AddEventListener(changeEventName, false, func(dom.Event) {
		handler()
	})
}

// SyncMediaType reports whether the host page asked for the media inputs to
// be aligned on ready.
func (p *Page) SyncMediaType() bool {
	form := p.document.GetElementByID(FormID)
	if form == nil {
		return false
	}
	return form.GetAttribute(SyncMediaTypeAttr) == "true"
}

// InstallController builds a controller for the page and installs it.
func InstallController(document dom.Document) (*visibility.Controller, error) {
	p := NewPage(document)
	if err := p.Check(); err != nil {
		return nil, err
	}

	typeSelector, err := p.Selector(visibility.TypeSelector)
	if err != nil {
		return nil, err
	}
	mediaTypeSelector, err := p.Selector(visibility.MediaTypeSelector)
	if err != nil {
		return nil, err
	}

	var opts []visibility.Option
	if p.SyncMediaType() {
		opts = append(opts, visibility.WithMediaTypeSync())
	}

	c, err := visibility.New(typeSelector, mediaTypeSelector, p, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Install(p); err != nil {
		return nil, err
	}
	return c, nil
}
