package main

import (
	"github.com/nopoh28102/boot2/client/common"
	"github.com/nopoh28102/boot2/client/dombinding"

	"honnef.co/go/js/dom"
)

var D = dom.GetWindow().Document().(dom.HTMLDocument)

func run() {
	env := common.Env{}
	env.Window = dom.GetWindow()
	env.Document = env.Window.Document()

	if _, err := dombinding.InstallController(env.Document); err != nil {
		println("Unable to install the template form visibility controller: ", err.Error())
	}
}

func main() {
	switch readyState := D.ReadyState(); readyState {
	case "loading":
		D.AddEventListener("DOMContentLoaded", false, func(dom.Event) {
			run()
		})
	case "interactive", "complete":
		run()
	default:
		println("Unexpected document.ReadyState value!")
	}
}
