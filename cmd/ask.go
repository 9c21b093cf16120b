package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Yates-Labs/groundqa/internal/answer"
	"github.com/Yates-Labs/groundqa/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNoContext = errors.New("at least one --context or --context-file is required")

type askOptions struct {
	contexts     []string
	contextFiles []string
	configPath   string
	mock         bool
	jsonOutput   bool
	model        string
	temperature  float64
	maxTokens    int
}

type askResult struct {
	RunID    string `json:"run_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Model    string `json:"model"`
	Mock     bool   `json:"mock"`
}

func newAskCmd() *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question from the supplied context",
		Long: `Answer a question using only the supplied context.

Context is given inline with --context or read from files with
--context-file; both may be repeated. Several pieces of context are joined
with newlines in the order given (inline first, then files).

Model options come from --config (YAML, JSON or TOML with the keys
api_key, name, temperature, max_tokens, base_url), then OPENAI_API_KEY and
OPENAI_BASE_URL, then flags.

Examples:
  groundqa ask "What is the capital of France?" --context "Paris is the capital of France."
  groundqa ask "Who wrote it?" --context-file notes.txt --model gpt-4 --temperature 0
  groundqa ask "Summarize" --context "offline test" --mock --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.contexts, "context", nil, "Context text (repeatable)")
	flags.StringArrayVar(&opts.contextFiles, "context-file", nil, "File whose contents are used as context (repeatable)")
	flags.StringVar(&opts.configPath, "config", "", "Model configuration file")
	flags.BoolVar(&opts.mock, "mock", false, "Answer offline without calling the API")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	flags.StringVar(&opts.model, "model", answer.DefaultModel, "Model identifier")
	flags.Float64Var(&opts.temperature, "temperature", answer.DefaultTemperature, "Sampling temperature")
	flags.IntVar(&opts.maxTokens, "max-tokens", answer.DefaultMaxTokens, "Maximum tokens in the answer")

	return cmd
}

func runAsk(cmd *cobra.Command, opts *askOptions, question string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	docs, err := collectContext(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = applyFlagOverrides(cmd, opts, cfg)

	logger.Info().
		Bool("mock", opts.mock).
		Int("context_docs", len(docs.Docs())).
		Msg("answering question")

	var text string
	if opts.mock {
		text = answer.AnswerQuestionMock(question, docs, cfg)
	} else {
		text, err = answer.AnswerQuestion(ctx, question, docs, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("answer failed")
			return fmt.Errorf("failed to generate answer: %w", err)
		}
	}

	result := askResult{
		RunID:    runID,
		Question: question,
		Answer:   text,
		Model:    cfg.Resolve().Model,
		Mock:     opts.mock,
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderResult(cmd.OutOrStdout(), result)
	return nil
}

// collectContext gathers inline and file context in flag order. A single
// source stays a single string; several become an ordered sequence.
func collectContext(opts *askOptions) (answer.Context, error) {
	docs := make([]string, 0, len(opts.contexts)+len(opts.contextFiles))
	docs = append(docs, opts.contexts...)

	for _, path := range opts.contextFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return answer.Context{}, fmt.Errorf("failed to read context file: %w", err)
		}
		docs = append(docs, string(data))
	}

	switch len(docs) {
	case 0:
		return answer.Context{}, errNoContext
	case 1:
		return answer.Single(docs[0]), nil
	default:
		return answer.Multiple(docs...), nil
	}
}

// applyFlagOverrides lets explicitly set flags win over file and environment
// values. Unset flags leave the config untouched so its defaults still apply.
func applyFlagOverrides(cmd *cobra.Command, opts *askOptions, cfg answer.ModelConfig) answer.ModelConfig {
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg = cfg.WithName(opts.model)
	}
	if flags.Changed("temperature") {
		cfg = cfg.WithTemperature(opts.temperature)
	}
	if flags.Changed("max-tokens") {
		cfg = cfg.WithMaxTokens(opts.maxTokens)
	}
	return cfg
}

func renderResult(w io.Writer, r askResult) {
	var (
		headerColor   = lipgloss.Color("#F780FF") // Bright pink
		questionColor = lipgloss.Color("#8BE9FD") // Cyan
		answerColor   = lipgloss.Color("#E9E9F4") // Light purple/white
		contextColor  = lipgloss.Color("#6272A4") // Muted purple
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	questionStyle := lipgloss.NewStyle().
		Foreground(questionColor).
		Italic(true)

	answerStyle := lipgloss.NewStyle().
		Foreground(answerColor)

	metaStyle := lipgloss.NewStyle().
		Foreground(contextColor).
		Italic(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Question:"))
	fmt.Fprintln(w, questionStyle.Render(r.Question))
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Answer:"))
	fmt.Fprintln(w, answerStyle.Render(strings.TrimSpace(r.Answer)))
	fmt.Fprintln(w)

	source := r.Model
	if r.Mock {
		source = "mock"
	}
	fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("model: %s  run: %s", source, r.RunID)))
}
