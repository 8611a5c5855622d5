package cms_fx

import (
	"go.uber.org/fx"

	"honesttour/internal/infra"
)

var Module = fx.Provide(provideCMSClient)

func provideCMSClient(cfg infra.Config) *infra.CMSClient {
	return infra.NewCMSClient(cfg)
}
