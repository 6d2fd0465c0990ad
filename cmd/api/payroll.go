package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cmlabs-hris/zenith-hr/internal/config"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
	"github.com/spf13/cobra"
)

var payrollPeriod string

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Run a payroll over the configured store and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		req := payroll.CalculatePayrollRequest{Period: payrollPeriod}
		if err := req.Validate(); err != nil {
			return err
		}

		s, err := newStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if req.Period == "" {
			req.Period = payroll.CurrentPeriod(s.Now())
		}

		records, err := s.CalculatePayroll(cmd.Context(), req.Period)
		if err != nil {
			return err
		}
		employees, err := s.ListEmployees(cmd.Context())
		if err != nil {
			return err
		}
		names := make(map[string]string, len(employees))
		for _, e := range employees {
			names[e.ID] = e.Name
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "EMPLOYEE\tPERIOD\tHOURS\tGROSS\tDEDUCTIONS\tNET")
		for _, r := range payroll.NewPayrollRecordResponses(records, names) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.EmployeeName, r.Period,
				r.TotalHours.String(), r.GrossPay.StringFixed(2), r.Deductions.StringFixed(2), r.NetPay.StringFixed(2))
		}
		summary := payroll.NewPayrollSummaryResponse(records)
		fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t%s\t%s\n",
			req.Period, summary.TotalHours.String(), summary.TotalGrossPay.StringFixed(2),
			summary.TotalDeductions.StringFixed(2), summary.TotalNetPay.StringFixed(2))
		return tw.Flush()
	},
}

func init() {
	payrollCmd.Flags().StringVar(&payrollPeriod, "period", "", "payroll period as YYYY-MM (default current month)")
}
