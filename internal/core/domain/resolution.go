package domain

import "maps"

// Resolution is everything needed to write the manifest of one install location.
type Resolution struct {
	Requirements Requirements
	Scripts      map[string]any
	Settings     map[string]any
}

// Empty reports whether the location has nothing to install.
// Settings alone never trigger an install.
func (r Resolution) Empty() bool {
	return len(r.Requirements) == 0 && len(r.Scripts) == 0
}

// WithSettings returns a copy of r with overrides layered over its settings.
// Overrides win on key collisions; nested values are replaced, not merged.
func (r Resolution) WithSettings(overrides map[string]any) Resolution {
	if len(overrides) == 0 {
		return r
	}
	settings := make(map[string]any, len(r.Settings)+len(overrides))
	maps.Copy(settings, r.Settings)
	maps.Copy(settings, overrides)
	r.Settings = settings
	return r
}

// Resolve gathers the requirements, scripts and settings for the location owned by owner.
//
// Requirements accumulate in this order: the owner's dev requirements (only when includeDev),
// the owner's requirements, then the requirements of every merged package in the order given.
// Scripts and settings do not accumulate: each merged package with a non-empty block replaces
// the previous block wholesale.
func Resolve(owner Package, includeDev bool, merged []Package) Resolution {
	res := Resolution{
		Requirements: Requirements{},
		Scripts:      map[string]any{},
		Settings:     map[string]any{},
	}

	if includeDev && len(owner.RequireDev) > 0 {
		res.Requirements = res.Requirements.Merge(owner.RequireDev)
	}

	if len(owner.Require) > 0 {
		res.Requirements = res.Requirements.Merge(owner.Require)
	}

	for _, pkg := range merged {
		if len(pkg.Require) > 0 {
			res.Requirements = res.Requirements.Merge(pkg.Require)
		}
		if len(pkg.Scripts) > 0 {
			res.Scripts = pkg.Scripts
		}
		if len(pkg.Config) > 0 {
			res.Settings = pkg.Config
		}
	}

	return res
}
