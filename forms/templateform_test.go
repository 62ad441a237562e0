package forms

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func selected(options []Option) []string {
	var values []string
	for _, o := range options {
		if o.Selected {
			values = append(values, o.Value)
		}
	}
	return values
}

func TestNewTemplateFormDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/templates/new", nil)
	f := NewTemplateForm(r, false)

	assert.Equal(t, "New Template", f.PageTitle)
	assert.Equal(t, []string{"text"}, selected(f.Types))
	assert.Equal(t, []string{"url"}, selected(f.MediaTypes))
	assert.False(t, f.SyncMediaType)
	assert.False(t, f.MediaSectionVisible)
	assert.True(t, f.MediaURLVisible)
	assert.False(t, f.MediaFileVisible)
}

func TestNewTemplateFormPreloadsEditValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/templates/promo/edit?name=promo&type=media&media_type=file&media_url=https://example.com/a.png", nil)
	f := NewTemplateForm(r, true)

	assert.Equal(t, "Edit Template: promo", f.PageTitle)
	assert.Equal(t, "https://example.com/a.png", f.Fields["media_url"])
	assert.Equal(t, []string{"media"}, selected(f.Types))
	assert.Equal(t, []string{"file"}, selected(f.MediaTypes))
	assert.True(t, f.SyncMediaType)

	// the page template keeps its own defaults for the media inputs
	assert.True(t, f.MediaURLVisible)
	assert.False(t, f.MediaFileVisible)
}

func TestSelectOptionsDoesNotMutateShared(t *testing.T) {
	r := httptest.NewRequest("GET", "/templates/new?type=buttons", nil)
	NewTemplateForm(r, false)

	for _, o := range typeOptions {
		assert.False(t, o.Selected, o.Value)
	}
}

func TestSelectOptionsUnknownValue(t *testing.T) {
	options := selectOptions(mediaTypeOptions, "ftp")
	assert.Equal(t, []string{"url"}, selected(options))
	assert.Empty(t, selected(selectOptions(nil, "x")))
}

func TestNewTemplateFormReadsContentBody(t *testing.T) {
	r := httptest.NewRequest("GET", "/templates/new?content=hello&text=ignored", nil)
	f := NewTemplateForm(r, false)

	assert.Equal(t, "hello", f.Fields["content"])
	assert.NotContains(t, f.Fields, "text")
}
