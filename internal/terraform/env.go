package terraform

import (
	"os"
	"strings"
)

const varPrefix = "TF_VAR_"

// CollectVars returns every TF_VAR_-prefixed variable from the process
// environment, keyed by full name. The values are fed to the masking
// pipeline alongside provider secrets.
func CollectVars() map[string]string {
	return collectVars(os.Environ())
}

func collectVars(environ []string) map[string]string {
	out := map[string]string{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, varPrefix) {
			continue
		}
		out[k] = v
	}
	return out
}

// VarValues returns just the variable values, for mask construction.
func VarValues(vars map[string]string) []string {
	keys := sortedKeys(vars)
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, vars[k])
	}
	return vals
}
