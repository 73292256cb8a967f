// Package flags extracts per-invocation --options from a message's
// argument list. Options are transient: parsed per message, never stored.
package flags

import "strings"

// NoEmbed forces plain-text rendering instead of a rich embed.
const NoEmbed = "noembed"

// Parse splits args into recognized option names and the remaining
// positional arguments. An option is any token starting with "--"; the
// name is lowercased. Unknown options are still collected; commands read
// only the names they care about.
func Parse(args []string) (map[string]bool, []string) {
	opts := make(map[string]bool)
	rest := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "--") && len(a) > 2 {
			opts[strings.ToLower(strings.TrimPrefix(a, "--"))] = true
			continue
		}
		rest = append(rest, a)
	}
	return opts, rest
}
