package cmd

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
)

// policiesCmd lists the registered policies
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the scheduling policies and the batch kind each applies to",
	Run: func(cmd *cobra.Command, args []string) {
		writePolicies(cmd.OutOrStdout())
	},
}

func writePolicies(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Policy", "Batch", "Kind"})
	for _, name := range sim.PolicyNames() {
		kind, _ := sim.PolicyKind(name)
		table.Append([]string{strings.ToUpper(name), string(kind), kind.String()})
	}
	table.Render()
}
