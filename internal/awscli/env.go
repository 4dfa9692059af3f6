package awscli

import (
	"os"
	"sort"
	"strings"
)

const varPrefix = "AWS_VAR_"

// CollectVars returns every AWS_VAR_-prefixed variable from the process
// environment, keyed by full name.
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

// VarValues returns the variable values in deterministic order.
func VarValues(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, vars[k])
	}
	return vals
}
