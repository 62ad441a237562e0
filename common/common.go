package common

import (
	"github.com/isomorphicgo/isokit"

	"github.com/nopoh28102/boot2/common/config"
)

type Env struct {
	Config      *config.Config
	TemplateSet *isokit.TemplateSet
}
