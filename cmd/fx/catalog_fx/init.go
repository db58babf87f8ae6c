package catalog_fx

import (
	"go.uber.org/fx"

	"moodtrip/internal/catalog"
)

var Module = fx.Provide(catalog.New)
