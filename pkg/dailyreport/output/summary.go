package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
)

// WriteSummary prints one line of section counts per report.
func WriteSummary(w io.Writer, reports []models.DailyReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tREPORTER\tPROGRESS\tTASKS\tPLANS\tWORKERS\tMACHINERY\tPROBLEMS\tREQUIREMENTS")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.ReportDate,
			r.ReporterName,
			r.OverallProgress,
			len(r.TaskProgressList),
			len(r.TomorrowPlans),
			r.OnSitePersonnelCount,
			len(r.MachineryRentals),
			len(r.ProblemFeedbacks),
			len(r.Requirements),
		)
	}
	fmt.Fprintf(tw, "TOTAL\t%d sheet(s)\n", len(reports))
	return tw.Flush()
}
