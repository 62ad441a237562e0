package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/isomorphicgo/isokit"

	"github.com/nopoh28102/boot2/common"
	"github.com/nopoh28102/boot2/forms"
)

func DisplayTemplateForm(env *common.Env, w http.ResponseWriter, t *forms.TemplateForm) {
	env.TemplateSet.Render("templateform_page", &isokit.RenderParams{Writer: w, Data: t})
}

// TemplateFormHandler renders the create/edit template form. A POST re-renders
// the form from the submitted values; saving it is out of this server's hands.
func TemplateFormHandler(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		DisplayTemplateForm(env, w, templateFormPage(env, r))
	})
}

func templateFormPage(env *common.Env, r *http.Request) *forms.TemplateForm {
	syncMediaType := env.Config != nil && env.Config.SyncMediaTypeOnReady
	t := forms.NewTemplateForm(r, syncMediaType)

	if name := mux.Vars(r)["name"]; name != "" {
		t.Fields["name"] = name
		t.PageTitle = "Edit Template: " + name
	}
	return t
}
