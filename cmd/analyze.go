package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
	"github.com/arasv/runwrapped/internal/storage"
)

const analyzeSystemPrompt = `You are a Netrunner performance analyst. You are given structured data
computed from a player's game-history export and a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If a field is null the game data never recorded it; say so instead of guessing.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable. Focus on what the player can actually change.
- Avoid generic Netrunner advice unless it directly explains a pattern in the data.

Metrics glossary:
- Corp/Runner record: wins-losses per side, counting only decided games.
- Coverage: fraction of games where the player could be identified on a side.
- Clicks gained: total clicks accrued over a game. More turns = more clicks.
- Fake credits: credits spent beyond credits gained (started above zero).
- Unique accesses: distinct Corp cards the Runner accessed.
- Flatline: Corp win by dealing damage past the Runner's grip.
- Concede: a forfeit; conceded games are excluded from "least X in a win" records.
- Streak: consecutive calendar days (UTC) with at least one game.
- Drought: longest gap of calendar days with no games between two played days.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzeFileCmd = &cobra.Command{
	Use:   "file <history.json> <question>",
	Short: "Analyze a history export with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeFile,
}

var analyzeUploadCmd = &cobra.Command{
	Use:   "upload <hash-prefix> <question>",
	Short: "Analyze a stored upload with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeUpload,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzeCmd.AddCommand(analyzeFileCmd)
	analyzeCmd.AddCommand(analyzeUploadCmd)
}

func runAnalyzeFile(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}

	contextJSON, err := buildReviewContext(summary, user)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, args[1])
}

func runAnalyzeUpload(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stored, err := db.GetUploadByPrefix(args[0])
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("upload not found: %s", args[0])
	}
	games, err := db.LoadGames(stored.Hash)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}

	user := stored.Username
	if asUser != "" {
		user = asUser
	}
	summary := &model.Summary{
		Games:   games,
		Profile: analysis.DetectProfile(games),
	}
	if summary.Profile != nil {
		summary.Aggregates = analysis.ComputeAggregates(games, user)
	}

	contextJSON, err := buildReviewContext(summary, user)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, args[1])
}

// buildReviewContext serialises the full computed review into compact JSON.
func buildReviewContext(summary *model.Summary, user string) (string, error) {
	review := buildReview(summary, user)
	b, err := json.Marshal(review)
	return string(b), err
}

func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		// Provide a cleaner error message for common API errors.
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed, check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
