package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createFlagAliases maps the short spellings accepted by create onto its
// canonical flags. Aliases stay out of the usage output.
var createFlagAliases = map[string]string{
	"desc": "description",
	"pri":  "priority",
	"from": "origin",
}

func addCreateFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), createFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		return normalize(f, name)
	})
}
