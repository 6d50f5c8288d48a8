package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	response "fleet_survey/internal/adapter/http/dto/response"
	"fleet_survey/internal/adapter/persistence/repository"
	"fleet_survey/internal/domain/survey"
	"fleet_survey/internal/infrastructure/database"
	"fleet_survey/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "surveyctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveyctl",
		Short: "Fleet survey maintenance CLI",
		Long: `surveyctl runs the survey scheduling operations outside the HTTP API: recomputing
next surveys for a ship, listing upcoming surveys for a company, and evaluating a single
certificate without touching the database.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newRecomputeCmd(),
		newUpcomingCmd(),
		newCalcCmd(),
	)
	return cmd
}

func newSurveyUseCase(ctx context.Context) (*usecase.SurveyUseCase, error) {
	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return usecase.NewSurveyUseCase(
		repository.NewCertificateDynamoRepository(ddb),
		repository.NewShipDynamoRepository(ddb),
		repository.NewCompanyDynamoRepository(ddb),
	), nil
}

func newRecomputeCmd() *cobra.Command {
	var shipID string
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute next survey for every certificate of a ship",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := newSurveyUseCase(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := uc.RecomputeShip(cmd.Context(), shipID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response.FromRecomputeSummary(summary))
		},
	}
	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID")
	_ = cmd.MarkFlagRequired("ship")
	return cmd
}

func newUpcomingCmd() *cobra.Command {
	var (
		company string
		date    string
		days    int
	)
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List certificates whose survey window contains the check date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := newSurveyUseCase(cmd.Context())
			if err != nil {
				return err
			}
			if date != "" {
				d, ok, err := survey.ParseDate("date", date)
				if err != nil {
					return err
				}
				if ok {
					uc = uc.WithClock(func() time.Time { return d })
				}
			}
			res, err := uc.UpcomingSurveys(cmd.Context(), company)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response.FromUpcomingSurveys(res, days))
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "Company ID or name")
	cmd.Flags().StringVar(&date, "date", "", "Check date (YYYY-MM-DD); defaults to today")
	cmd.Flags().IntVar(&days, "days", 30, "Echoed in the output")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

type calcOutput struct {
	NextSurvey     string `json:"next_survey"`
	NextSurveyType string `json:"next_survey_type"`
	NextSurveyDate string `json:"next_survey_date,omitempty"`
	WindowType     string `json:"window_type,omitempty"`
	WindowOpen     string `json:"window_open,omitempty"`
	WindowClose    string `json:"window_close,omitempty"`
	Reasoning      string `json:"reasoning,omitempty"`
}

func newCalcCmd() *cobra.Command {
	var (
		in               survey.Input
		asOf             string
		anniversaryDay   int
		anniversaryMonth int
		cycleStart       string
		deliveryDate     string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the next survey of a single certificate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.AsOf = survey.Today(time.Now())
			if asOf != "" {
				d, ok, err := survey.ParseDate("as_of", asOf)
				if err != nil {
					return err
				}
				if ok {
					in.AsOf = d
				}
			}

			cycle, err := survey.NewShipCycle(anniversaryDay, anniversaryMonth, cycleStart, deliveryDate)
			if err != nil {
				return err
			}
			in.Cycle = cycle

			s, err := survey.Calculate(in)
			if err != nil {
				return err
			}

			out := calcOutput{
				NextSurvey:     s.Display,
				NextSurveyType: s.NextSurveyType,
				WindowType:     s.Window.Label(),
				Reasoning:      s.Reasoning,
			}
			if s.Determined() {
				out.NextSurveyDate = s.NextSurveyDate.Format(survey.ISOLayout)
			}
			switch {
			case s.Window.Kind == survey.WindowDateRange:
				out.WindowOpen = in.IssueDate
				out.WindowClose = in.ValidDate
			case s.Anchor != nil:
				open, closeAt := s.Window.Bounds(*s.Anchor)
				out.WindowOpen = open.Format(survey.ISOLayout)
				out.WindowClose = closeAt.Format(survey.ISOLayout)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&in.CertName, "name", "", "Certificate name")
	cmd.Flags().StringVar(&in.CertType, "type", "", "Certificate type (Full Term, Interim, Short Term, Conditional, ...)")
	cmd.Flags().StringVar(&in.IssueDate, "issue", "", "Issue date")
	cmd.Flags().StringVar(&in.ValidDate, "valid", "", "Valid (expiry) date")
	cmd.Flags().StringVar(&in.LastEndorse, "last-endorse", "", "Last endorsement date")
	cmd.Flags().StringVar(&in.NextSurveyType, "next-survey-type", "", "Current next survey type")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference day for the anniversary cycle; defaults to today")
	cmd.Flags().IntVar(&anniversaryDay, "anniversary-day", 0, "Ship anniversary day")
	cmd.Flags().IntVar(&anniversaryMonth, "anniversary-month", 0, "Ship anniversary month")
	cmd.Flags().StringVar(&cycleStart, "cycle-start", "", "Special survey cycle start")
	cmd.Flags().StringVar(&deliveryDate, "delivery", "", "Ship delivery date")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
