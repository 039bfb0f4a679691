package httpapi

import (
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/probe"
	"jobtrack-engine/internal/repo"
)

type Deps struct {
	Jobs      repo.Jobs
	Companies repo.Companies
	Users     repo.Users

	Prober *probe.Prober

	// Reloadable config snapshot
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
