package config

import (
	"encoding/json"
	"fmt"
)

// ValidationReport is the outcome of checking a raw document. Fatal findings
// block acceptance; warnings are informational.
type ValidationReport struct {
	Fatal    []string
	Warnings []string
}

// Valid reports whether the document can be accepted.
func (r ValidationReport) Valid() bool {
	return len(r.Fatal) == 0
}

func (r *ValidationReport) fatal(format string, args ...any) {
	r.Fatal = append(r.Fatal, fmt.Sprintf(format, args...))
}

func (r *ValidationReport) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks a raw document without mutating stored state.
//
// JSON syntax errors and a missing "containers" key are fatal. A missing
// "version" or "settings" key is a warning. Container and network names not
// present in the supplied runtime listings produce dangling-reference
// warnings; pass nil listings to skip those checks (engine unreachable).
func Validate(raw []byte, runningContainers, networks []string) ValidationReport {
	var report ValidationReport

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		report.fatal("invalid JSON: %v", err)
		return report
	}

	containersRaw, ok := doc["containers"]
	if !ok {
		report.fatal(`missing "containers" key`)
		return report
	}

	if _, ok := doc["version"]; !ok {
		report.warn(`missing "version" key`)
	}
	if _, ok := doc["settings"]; !ok {
		report.warn(`missing "settings" key`)
	}

	var containers map[string]Assignment
	if err := json.Unmarshal(containersRaw, &containers); err != nil {
		report.fatal(`"containers" has the wrong shape: %v`, err)
		return report
	}

	running := toSet(runningContainers)
	known := toSet(networks)

	for name, a := range containers {
		if runningContainers != nil {
			if _, ok := running[name]; !ok {
				report.warn("container %q is not known to the runtime", name)
			}
		}
		if networks == nil {
			continue
		}
		for _, n := range a.Networks {
			if _, ok := known[n]; !ok {
				report.warn("network %q (container %q) is not known to the runtime", n, name)
			}
		}
	}

	return report
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
