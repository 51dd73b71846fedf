package modules

import (
	"github.com/iota-uz/staffcal/modules/hrm"
	"github.com/iota-uz/staffcal/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		hrm.NewModule(),
	}

	NavLinks = hrm.NavItems
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
