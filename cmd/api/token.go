package main

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/config"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/session"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

var tokenEmployeeID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for an employee",
	Long: `Prints a bearer token whose employee_id claim selects the current employee for /me endpoints.
With SEED_FIXTURES on, the employee must exist in the seed data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		req := session.CreateSessionRequest{EmployeeID: tokenEmployeeID}
		if err := req.Validate(); err != nil {
			return err
		}

		// Employees created over HTTP get fresh ids at runtime, so only
		// seeded ids can be checked ahead of time.
		if cfg.Store.SeedFixtures {
			s, err := newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if _, err := s.GetEmployee(cmd.Context(), req.EmployeeID); err != nil {
				return fmt.Errorf("employee %q: %w", req.EmployeeID, err)
			}
		}

		JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		token, expiresAt, err := JWTService.GenerateSessionToken(req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, token)
		fmt.Fprintf(out, "# employee %s, expires %s\n", req.EmployeeID, time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmployeeID, "employee", "emp1", "employee id to put in the token")
}
