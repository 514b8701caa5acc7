// Package flagx contains helpers for sharing os.Args between several
// flag.FlagSet parsers. Each parser filters the raw arguments down to the
// flags it owns, so flags defined elsewhere in the program do not trip it.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args belonging to the allowed flags.
//
// Two spellings are recognized: a flag with its value as the next argument
// ("-c conf.json") and the combined form ("--config=conf.json"). For the
// separate-value form the following argument is kept as the value unless it
// starts with a dash, in which case the flag is kept bare.
func FilterArgs(args []string, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}

	// Always non-nil so the result can go straight into FlagSet.Parse.
	kept := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// Combined "-flag=value" form: keep the whole token.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowedSet[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := allowedSet[arg]; !ok {
			continue
		}
		kept = append(kept, arg)

		// Separate value, unless the next token is another flag.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			kept = append(kept, args[i+1])
			i++
		}
	}

	return kept
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// All other arguments are ignored, so callers can parse their own flags
// independently. Returns the empty string when neither flag is present.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
