package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newAliasedCreateCommand() (*cobra.Command, *string, *string, *string) {
	var description, priority, origin string
	cmd := &cobra.Command{Use: "create"}
	addCreateFlagAliases(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority")
	cmd.Flags().StringVarP(&origin, "origin", "o", "", "Origin")
	return cmd, &description, &priority, &origin
}

func TestCreateAliasesSetCanonicalFlags(t *testing.T) {
	cases := []struct {
		alias     string
		canonical string
		value     string
	}{
		{alias: "desc", canonical: "description", value: "Call the customer back"},
		{alias: "pri", canonical: "priority", value: "urgent"},
		{alias: "from", canonical: "origin", value: "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.alias, func(t *testing.T) {
			cmd, description, priority, origin := newAliasedCreateCommand()

			if err := cmd.Flags().Set(tc.alias, tc.value); err != nil {
				t.Fatalf("set %s alias: %v", tc.alias, err)
			}
			if !cmd.Flags().Changed(tc.canonical) {
				t.Fatalf("expected %s flag to be marked as changed", tc.canonical)
			}

			got := map[string]string{
				"description": *description,
				"priority":    *priority,
				"origin":      *origin,
			}[tc.canonical]
			if got != tc.value {
				t.Fatalf("expected %s to be %q, got %q", tc.canonical, tc.value, got)
			}
		})
	}
}

func TestCreateAliasesStayOutOfUsage(t *testing.T) {
	cmd, _, _, _ := newAliasedCreateCommand()

	usage := cmd.Flags().FlagUsages()
	for _, alias := range []string{"--desc ", "--pri ", "--from "} {
		if strings.Contains(usage, alias) {
			t.Fatalf("did not expect %q in usage, got %q", alias, usage)
		}
	}
	if !strings.Contains(usage, "-d, --description") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}

func TestCreateCommandParsesAliases(t *testing.T) {
	t.Cleanup(func() {
		taskCreateDescription = ""
		taskCreatePriority = "medium"
		taskCreateOrigin = ""
	})

	err := taskCreateCmd.ParseFlags([]string{"--desc", "from alias", "--pri", "high", "--from", "email"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if taskCreateDescription != "from alias" {
		t.Fatalf("expected description to be set, got %q", taskCreateDescription)
	}
	if taskCreatePriority != "high" {
		t.Fatalf("expected priority to be set, got %q", taskCreatePriority)
	}
	if taskCreateOrigin != "email" {
		t.Fatalf("expected origin to be set, got %q", taskCreateOrigin)
	}
}
