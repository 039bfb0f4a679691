package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still wrap it in middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Jobs
	jh := JobsHandler{Repo: d.Jobs}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.List,
		http.MethodPost: jh.Create,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    jh.GetByPath,    // /jobs/{id}
		http.MethodPatch:  jh.PatchByPath,  // /jobs/{id}
		http.MethodDelete: jh.DeleteByPath, // /jobs/{id}
	}))

	// Companies
	ch := CompaniesHandler{Repo: d.Companies, Prober: d.Prober, CfgVal: d.CfgVal}
	mux.HandleFunc("/companies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ch.List,
		http.MethodPost: ch.Create,
	}))
	mux.HandleFunc("/companies/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    ch.GetByPath,
		http.MethodPatch:  ch.PatchByPath,
		http.MethodDelete: ch.DeleteByPath,
		http.MethodPost:   ch.ProbeByPath, // /companies/{id}/probe
	}))
	mux.HandleFunc("/probe/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.ProbeRun,
	}))

	// Accounts
	rh := RegisterHandler{Users: d.Users}
	mux.HandleFunc("/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Register,
	}))

	// Config
	cfgh := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgh.Get,
		http.MethodPut: cfgh.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgh.Path,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/token", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetAPIToken,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
