package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewFairyTaleDAO,
	NewLikeDAO,
	NewDailyUsageDAO,
	NewAdminDAO,
)
