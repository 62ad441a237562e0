package forms

import (
	"net/http"

	"github.com/nopoh28102/boot2/visibility"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// TemplateForm is the page model behind the create/edit content template form.
type TemplateForm struct {
	PageTitle     string
	FieldNames    []string
	Fields        map[string]string
	Types         []Option
	MediaTypes    []Option
	SyncMediaType bool

	// Initial presentation owned by the page template. The visibility
	// controller only corrects the media inputs after a media_type change,
	// unless SyncMediaType is set.
	MediaSectionVisible bool
	MediaURLVisible     bool
	MediaFileVisible    bool
}

var typeOptions = []Option{
	{Value: "text", Label: "Text"},
	{Value: "buttons", Label: "Buttons"},
	{Value: visibility.MediaTypeValue, Label: "Media"},
}

var mediaTypeOptions = []Option{
	{Value: "url", Label: "URL"},
	{Value: visibility.FileValue, Label: "File upload"},
}

func NewTemplateForm(r *http.Request, syncMediaType bool) *TemplateForm {
	t := TemplateForm{}
	t.PageTitle = "New Template"
	t.FieldNames = []string{"name", "content", string(visibility.TypeSelector), string(visibility.MediaTypeSelector), string(visibility.MediaURLField)}
	t.Fields = make(map[string]string)
	t.SyncMediaType = syncMediaType
	PopulateFormFields(r, &t)

	if t.Fields["name"] != "" {
		t.PageTitle = "Edit Template: " + t.Fields["name"]
	}

	t.Types = selectOptions(typeOptions, t.Fields[string(visibility.TypeSelector)])
	t.MediaTypes = selectOptions(mediaTypeOptions, t.Fields[string(visibility.MediaTypeSelector)])

	t.MediaSectionVisible = false
	t.MediaURLVisible = true
	t.MediaFileVisible = false
	return &t
}

func PopulateFormFields(r *http.Request, t *TemplateForm) {
	for _, fieldName := range t.FieldNames {
		t.Fields[fieldName] = r.FormValue(fieldName)
	}
}

// selectOptions copies the option list, marking value as selected. The first
// option is selected when value matches none of them, as a browser would.
func selectOptions(options []Option, value string) []Option {
	result := make([]Option, len(options))
	copy(result, options)

	found := false
	for i := range result {
		if result[i].Value == value {
			result[i].Selected = true
			found = true
		}
	}
	if !found && len(result) > 0 {
		result[0].Selected = true
	}
	return result
}
