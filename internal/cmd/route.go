package cmd

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/errors"
	"github.com/paikeys/paikeys/internal/log"
	"github.com/paikeys/paikeys/internal/router"
	"github.com/paikeys/paikeys/internal/tui"
	"github.com/paikeys/paikeys/pkg/paikeys/client"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Run routing decisions from the terminal",
	Long: `Run the selection engine locally without starting the server.

Available subcommands:
  test         - Show the decision for one request
  explain      - Show the decision plus every model's factor scores
  interactive  - Fill in the request with a form, then explain it

Examples:
  paikeys route test --modality code --priority speed "Write a Python function to parse JSON"
  paikeys route explain --modality vision --priority economy --prompt "Describe this chart"
  paikeys route test --server http://localhost:8080 --priority economy "Summarize this article"
`,
}

var routeTestCmd = &cobra.Command{
	Use:   "test [prompt]",
	Short: "Show the routing decision for a request",
	RunE:  runRouteTest,
}

var routeExplainCmd = &cobra.Command{
	Use:   "explain [prompt]",
	Short: "Show the decision with per-model factor scores",
	RunE:  runRouteExplain,
}

var routeInteractiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a request with an interactive form",
	Args:  cobra.NoArgs,
	RunE:  runRouteInteractive,
}

// Flags for route test and explain
var (
	routePrompt   string
	routeModality string
	routePriority string
	routeServer   string
)

// canPrompt reports whether forms may be shown.
var canPrompt = tui.ShouldPrompt

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.AddCommand(routeTestCmd)
	routeCmd.AddCommand(routeExplainCmd)
	routeCmd.AddCommand(routeInteractiveCmd)

	for _, c := range []*cobra.Command{routeTestCmd, routeExplainCmd} {
		c.Flags().StringVarP(&routePrompt, "prompt", "p", "", "task description (or pass it as arguments)")
		c.Flags().StringVarP(&routeModality, "modality", "m", "text", "modality: text, code, vision, audio, image, multimodal")
		c.Flags().StringVar(&routePriority, "priority", "intelligence", "priority: intelligence, speed, economy")
	}
	routeTestCmd.Flags().StringVar(&routeServer, "server", "", "ask a running paikeys server instead of the local catalog")
}

// decisionOutput is the JSON shape of a CLI decision.
type decisionOutput struct {
	Primary          router.ModelDefinition   `json:"primary"`
	Contenders       []router.ModelDefinition `json:"contenders"`
	Insights         router.Insights          `json:"insights"`
	ModalityFallback bool                     `json:"modalityFallback"`
	Scores           []scoreOutput            `json:"scores,omitempty"`
}

type scoreOutput struct {
	ID           string  `json:"id"`
	Score        float64 `json:"score"`
	Intelligence float64 `json:"intelligence"`
	Speed        float64 `json:"speed"`
	Economy      float64 `json:"economy"`
	Capacity     float64 `json:"capacity"`
}

func requestFromFlags(args []string) router.RoutingRequest {
	prompt := routePrompt
	if prompt == "" {
		prompt = strings.Join(args, " ")
	}
	return router.RoutingRequest{
		Prompt:   prompt,
		Modality: domain.Modality(routeModality),
		Priority: domain.Priority(routePriority),
	}
}

func runRouteTest(cmd *cobra.Command, args []string) error {
	if routeServer != "" {
		return runRemoteDecision(cmd, requestFromFlags(args))
	}
	return runDecision(cmd, requestFromFlags(args), false)
}

func runRouteExplain(cmd *cobra.Command, args []string) error {
	return runDecision(cmd, requestFromFlags(args), true)
}

func runRouteInteractive(cmd *cobra.Command, args []string) error {
	if !canPrompt() {
		return fmt.Errorf("interactive mode needs a terminal; use 'paikeys route explain' with flags instead")
	}

	answers, err := tui.PromptForRoute(tui.RouteAnswers{})
	if err != nil {
		return err
	}

	return runDecision(cmd, router.RoutingRequest{
		Prompt:   answers.Prompt,
		Modality: answers.Modality,
		Priority: answers.Priority,
	}, true)
}

func runDecision(cmd *cobra.Command, req router.RoutingRequest, explain bool) error {
	r, err := loadRouter()
	if err != nil {
		return err
	}

	result, err := r.Route(req)
	if stderrors.Is(err, errors.ErrInvalidPrompt) && canPrompt() {
		// On a terminal a missing prompt opens the form with the flags pre-filled.
		answers, perr := tui.PromptForRoute(tui.RouteAnswers{Modality: req.Modality, Priority: req.Priority})
		if perr != nil {
			return perr
		}
		req = router.RoutingRequest{Prompt: answers.Prompt, Modality: answers.Modality, Priority: answers.Priority}
		result, err = r.Route(req)
	}
	if err != nil {
		return err
	}

	log.DefaultLogger().Info("route decided",
		"modality", req.Modality,
		"priority", req.Priority,
		"primary", result.Primary.ID,
		"fallback", result.ModalityFallback,
	)

	out := cmd.OutOrStdout()
	if format == "json" {
		output := decisionOutput{
			Primary:          result.Primary,
			Contenders:       result.Contenders,
			Insights:         result.Insights,
			ModalityFallback: result.ModalityFallback,
		}
		if explain {
			for _, s := range result.Ranking {
				output.Scores = append(output.Scores, scoreOutput{
					ID:           s.Model.ID,
					Score:        s.Score,
					Intelligence: s.Intelligence,
					Speed:        s.Speed,
					Economy:      s.Economy,
					Capacity:     s.Capacity,
				})
			}
		}
		return writeJSON(out, output)
	}

	_, err = fmt.Fprint(out, tui.RenderDecision(req, result, explain))
	return err
}

// runRemoteDecision asks the server at --server for the decision. The API does
// not expose factor scores, so remote decisions never carry them.
func runRemoteDecision(cmd *cobra.Command, req router.RoutingRequest) error {
	resp, err := client.New(routeServer).Route(cmd.Context(), &client.RouteRequest{
		Prompt:   req.Prompt,
		Modality: string(req.Modality),
		Priority: string(req.Priority),
	})
	if err != nil {
		return remoteError(err)
	}

	log.DefaultLogger().Info("route decided remotely",
		"server", routeServer,
		"request_id", resp.RequestID,
		"primary", resp.Recommendation.ID,
	)

	result := &router.RoutingResult{
		Primary:  fromClientModel(resp.Recommendation),
		Insights: router.Insights(resp.Insights),
	}
	for _, m := range resp.Alternatives {
		result.Contenders = append(result.Contenders, fromClientModel(m))
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, decisionOutput{
			Primary:    result.Primary,
			Contenders: result.Contenders,
			Insights:   result.Insights,
		})
	}
	_, err = fmt.Fprint(out, tui.RenderDecision(req, result, false))
	return err
}

// remoteError gives a rejected remote request the same error code a local
// rejection carries. The server's missing-field response has no code and
// counts as a missing prompt.
func remoteError(err error) error {
	var apiErr *client.APIError
	if !stderrors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		return err
	}

	code := errors.ErrorCode(apiErr.Code)
	if code == "" {
		code = errors.ErrCodeRequestPrompt
	}
	return errors.Wrap(code, "server rejected the request", err)
}

func fromClientModel(m client.Model) router.ModelDefinition {
	caps := make([]domain.Modality, len(m.Capabilities))
	for i, c := range m.Capabilities {
		caps[i] = domain.Modality(c)
	}
	return router.ModelDefinition{
		ID:             m.ID,
		Name:           m.Name,
		Provider:       m.Provider,
		Capabilities:   caps,
		Strengths:      m.Strengths,
		ContextWindow:  m.ContextWindow,
		CostPerMillion: m.CostPerMillion,
		OpenSource:     m.OpenSource,
	}
}
