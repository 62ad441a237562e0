package common

import (
	"honnef.co/go/js/dom"
)

type Env struct {
	Window   dom.Window
	Document dom.Document
}
