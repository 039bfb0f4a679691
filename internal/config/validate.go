package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy alongside anything a user
// should fix before saving.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Auth.TokenAccount = strings.TrimSpace(out.Auth.TokenAccount)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Probe.Enabled {
		if out.Probe.ReqPerSec <= 0 {
			res.addErr("probe.req_per_sec must be > 0 when probe.enabled=true")
		} else if out.Probe.ReqPerSec > 5 {
			res.addWarn("probe.req_per_sec is high (%.1f); careers sites may rate-limit you.", out.Probe.ReqPerSec)
		}
		if out.Probe.Burst <= 0 {
			res.addErr("probe.burst must be >= 1")
		}
		if out.Probe.TimeoutSeconds <= 0 {
			res.addErr("probe.timeout_seconds must be > 0")
		}
	}

	return out, res
}
