package config

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dshills/rebind/internal/input/button"
)

// maxSuggestions bounds the names offered for a bad button spec.
const maxSuggestions = 3

// suggestButtons returns the known button specs closest to a spec that
// failed to parse, best match first.
func suggestButtons(spec string) []string {
	device, name, found := strings.Cut(strings.TrimSpace(spec), ":")
	if !found {
		device, name = "key", device
	}

	var prefix string
	var names []string
	switch strings.ToLower(strings.TrimSpace(device)) {
	case "key", "kb", "keyboard":
		prefix, names = "key:", button.KeyNames()
	case "mouse":
		prefix, names = "mouse:", button.MouseNames()
	default:
		return nil
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	var out []string
	for _, m := range fuzzy.Find(name, lowered) {
		out = append(out, prefix+names[m.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
