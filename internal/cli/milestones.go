package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/vendor-supply-hub/internal/milestone"
	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
)

type milestoneRow struct {
	VendorCount   int              `json:"vendorCount"`
	PriceDrop     int              `json:"priceDrop"`
	NextMilestone *model.Milestone `json:"nextMilestone"`
}

// NewMilestonesCommand creates the milestones command, which prints the discount
// tier for each vendor count from 0 to --max.
func NewMilestonesCommand() *cobra.Command {
	var (
		maxVendors int
		format     string
	)
	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Print the group-order discount tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxVendors < 0 {
				return fmt.Errorf("--max must be >= 0, got %d", maxVendors)
			}
			rows := make([]milestoneRow, 0, maxVendors+1)
			for n := 0; n <= maxVendors; n++ {
				rows = append(rows, milestoneRow{VendorCount: n, PriceDrop: milestone.DiscountFor(n), NextMilestone: milestone.Next(n)})
			}
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "text":
				return writeMilestoneTable(cmd.OutOrStdout(), rows)
			default:
				return fmt.Errorf("invalid format %q: must be text or json", format)
			}
		},
	}
	cmd.Flags().IntVar(&maxVendors, "max", 12, "largest vendor count to print")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}

func writeMilestoneTable(w io.Writer, rows []milestoneRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VENDORS\tPRICE DROP\tNEXT")
	for _, r := range rows {
		next := "max tier"
		if r.NextMilestone != nil {
			next = fmt.Sprintf("+%d vendors -> %d%%", r.NextMilestone.VendorsNeeded, r.NextMilestone.Discount)
		}
		fmt.Fprintf(tw, "%d\t%d%%\t%s\n", r.VendorCount, r.PriceDrop, next)
	}
	return tw.Flush()
}
