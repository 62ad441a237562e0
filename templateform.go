package main

import (
	"log"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/isomorphicgo/isokit"
	"github.com/justinas/alice"

	"github.com/nopoh28102/boot2/common"
	"github.com/nopoh28102/boot2/common/config"
	"github.com/nopoh28102/boot2/handlers"
	"github.com/nopoh28102/boot2/middleware"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Unable to load configuration: ", err)
	}

	env := common.Env{Config: cfg}
	isokit.TemplateFilesPath = cfg.AppRoot + "/templates"
	isokit.TemplateFileExtension = ".html"
	ts := isokit.NewTemplateSet()
	ts.GatherTemplates()
	env.TemplateSet = ts

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler)
	r.Handle("/templates/new", handlers.TemplateFormHandler(&env)).Methods("GET", "POST")
	r.Handle("/templates/{name}/edit", handlers.TemplateFormHandler(&env)).Methods("GET", "POST")

	r.Handle("/js/client.js", isokit.GopherjsScriptHandler(cfg.AppRoot))
	r.Handle("/js/client.js.map", isokit.GopherjsScriptMapHandler(cfg.AppRoot))

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.AppRoot+"/static"))))

	loggedRouter := ghandlers.LoggingHandler(os.Stdout, r)
	stdChain := alice.New(middleware.PanicRecoveryHandler)
	http.Handle("/", stdChain.Then(loggedRouter))

	log.Printf("Template form server listening on %s (sync media type on ready: %t)", cfg.Addr, cfg.SyncMediaTypeOnReady)
	if cfg.TLS() {
		err = http.ListenAndServeTLS(cfg.Addr, cfg.CertFile, cfg.KeyFile, nil)
	} else {
		err = http.ListenAndServe(cfg.Addr, nil)
	}
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}

}
