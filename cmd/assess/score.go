package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/modules/readiness"
)

type scoreFlags struct {
	companyName    string
	companySize    string
	industry       string
	infrastructure string
	experience     string
	goal           string
	compact        bool
}

func newScoreCmd() *cobra.Command {
	var f scoreFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the cloud journey assessment for a set of answers",
		Long: `Scores the given onboarding answers exactly as GET /api/cloud-journey does.
Omitted answers fall into the default branches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.companyName, "company-name", "", "company name echoed in the output")
	cmd.Flags().StringVar(&f.companySize, "company-size", "", "1-10, 11-50, 51-200, 201-500 or 500+")
	cmd.Flags().StringVar(&f.industry, "industry", "", "technology, healthcare, finance, retail, manufacturing or other")
	cmd.Flags().StringVar(&f.infrastructure, "infrastructure", "", "on-premises, hybrid or cloud")
	cmd.Flags().StringVar(&f.experience, "experience", "", "none, limited, moderate or extensive")
	cmd.Flags().StringVar(&f.goal, "goal", "", "cost-reduction, scalability, security, innovation or remote-work")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "print single-line JSON")
	return cmd
}

func runScore(cmd *cobra.Command, f scoreFlags) error {
	p := types.BusinessProfile{
		CompanyName:           f.companyName,
		CompanySize:           f.companySize,
		Industry:              f.industry,
		CurrentInfrastructure: f.infrastructure,
		CloudExperience:       f.experience,
		PrimaryGoal:           f.goal,
	}
	p.Normalize()

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !f.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(readiness.Evaluate(p)); err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	return nil
}
