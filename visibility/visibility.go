// Package visibility keeps the media parts of the template form in step with
// the form's two select boxes.
//
// The controller never touches a page directly. It reads select values through
// a Selector and writes through a Presenter, so the same rules run in the
// browser and in tests.
package visibility

import (
	"errors"
	"fmt"
)

type Region string

const (
	TypeSelector      Region = "type"
	MediaSection      Region = "mediaSection"
	MediaTypeSelector Region = "media_type"
	MediaURLField     Region = "media_url"
	MediaFileField    Region = "media_file"
)

// Regions lists every element the controller expects the page to provide.
var Regions = []Region{TypeSelector, MediaSection, MediaTypeSelector, MediaURLField, MediaFileField}

const (
	MediaTypeValue = "media"
	FileValue      = "file"
)

var (
	ErrMissingElement     = errors.New("required form element is missing")
	ErrAlreadyInitialized = errors.New("visibility controller already initialized")
)

type Selector interface {
	Value() string
}

type Presenter interface {
	SetVisible(region Region, visible bool)
}

type Notifier interface {
	OnChange(region Region, handler func())
}

type Option func(*Controller)

// WithMediaTypeSync makes Initialize apply the media type rule as well, so a
// page loaded with media_type already set to "file" shows the file input
// without waiting for a change.
func WithMediaTypeSync() Option {
	return func(c *Controller) {
		c.syncMediaType = true
	}
}

type Controller struct {
	typeSelector      Selector
	mediaTypeSelector Selector
	presenter         Presenter
	syncMediaType     bool
	initialized       bool
}

func New(typeSelector, mediaTypeSelector Selector, presenter Presenter, opts ...Option) (*Controller, error) {
	if typeSelector == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, TypeSelector)
	}
	if mediaTypeSelector == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, MediaTypeSelector)
	}
	if presenter == nil {
		return nil, fmt.Errorf("%w: presenter", ErrMissingElement)
	}

	c := &Controller{
		typeSelector:      typeSelector,
		mediaTypeSelector: mediaTypeSelector,
		presenter:         presenter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MediaSectionVisible reports whether the media section is shown for the
// given type value.
func MediaSectionVisible(typeValue string) bool {
	return typeValue == MediaTypeValue
}

// MediaFileVisible reports whether the file input is shown for the given media
// type value. The URL input always takes the opposite state.
func MediaFileVisible(mediaTypeValue string) bool {
	return mediaTypeValue == FileValue
}

// Initialize applies the media section rule once the page is ready. It may
// only run once per controller.
func (c *Controller) Initialize() error {
	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.initialized = true

	c.OnTypeChange()
	if c.syncMediaType {
		c.OnMediaTypeChange()
	}
	return nil
}

func (c *Controller) Initialized() bool {
	return c.initialized
}

func (c *Controller) OnTypeChange() {
	c.presenter.SetVisible(MediaSection, MediaSectionVisible(c.typeSelector.Value()))
}

// OnMediaTypeChange shows exactly one of the URL and file inputs. Both writes
// happen within this call, so no observer sees both or neither visible.
func (c *Controller) OnMediaTypeChange() {
	fileVisible := MediaFileVisible(c.mediaTypeSelector.Value())
	c.presenter.SetVisible(MediaURLField, !fileVisible)
	c.presenter.SetVisible(MediaFileField, fileVisible)
}

// Install subscribes the controller to both selectors and then initializes it.
func (c *Controller) Install(n Notifier) error {
	if n == nil {
		return fmt.Errorf("%w: notifier", ErrMissingElement)
	}
	if c.initialized {
		return ErrAlreadyInitialized
	}

	n.OnChange(TypeSelector, c.OnTypeChange)
	n.OnChange(MediaTypeSelector, c.OnMediaTypeChange)
	return c.Initialize()
}
