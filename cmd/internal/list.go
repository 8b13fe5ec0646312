package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/segmentio/aws-cognito/cmd/internal/configload"
	"github.com/segmentio/aws-cognito/lib/profiles"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list will show you the profiles currently configured",
	RunE:  listRun,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

const AnalyticsCommandNameList = "list"

func listProfileNames(ps configload.Profiles) []string {
	// Let's sort this list of profiles so we can have some more deterministic output:
	var profileNames []string

	for profile := range ps.Profiles {
		if profile == profiles.DefaultProfile {
			continue
		}
		profileNames = append(profileNames, profile)
	}

	sort.Strings(profileNames)

	return profileNames
}

func listRun(cmd *cobra.Command, args []string) error {
	Analytics.TrackRanCommand(AnalyticsCommandNameList)

	ps, err := configload.FindAndParse()
	if err != nil {
		return err
	}

	w := new(tabwriter.Writer)
	w.Init(cmd.OutOrStdout(), 0, 8, 2, '\t', 0)
	fmt.Fprintln(w, "PROFILE\tUSER_POOL\tIDENTITY_POOL\tSOURCE_PROFILE\t")
	for _, profile := range listProfileNames(ps) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			profile,
			ps.GetWithDefault(profile, configload.KeyUserPoolID, "-"),
			ps.GetWithDefault(profile, configload.KeyIdentityPoolID, "-"),
			ps.Profiles[profile]["source_profile"],
		)
	}
	return w.Flush()
}
