package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"studybyte/internal/adapter/extract"
	"studybyte/internal/adapter/llm"
	"studybyte/internal/config"
	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/logger"
	"studybyte/internal/service"
	"studybyte/internal/synth"
	"studybyte/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "synthctl",
		Short:        "Run the analysis and quiz engine against local files",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("name", "", "Filename used for classification (defaults to the file's base name)")
	pf.String("llm-provider", "", "LLM provider for analysis (gemini, ollama, openai); empty uses templates only")
	pf.String("llm-model", "", "LLM model name")
	pf.String("llm-url", "", "LLM server URL (ollama, openai-compatible)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(classifyCmd(), quizCmd(), analyzeCmd(), sectionCmd())
	return root
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILENAME...",
		Short: "Print the content domain each filename maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make(map[string]string, len(args))
			for _, name := range args {
				out[name] = synth.Classify(name).String()
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func quizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz FILE",
		Short: "Generate a template quiz for a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuiz,
	}
	f := cmd.Flags()
	f.IntP("num-questions", "n", 5, "Number of questions")
	f.StringP("topic", "t", "", "Topic interpolated into generic questions")
	f.StringP("difficulty", "d", "", "Difficulty (easy, medium, hard)")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
}

func sectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "section SECTION FILE",
		Short: "Analyze one section (topics, concepts, objectives, recommendations) of a document",
		Args:  cobra.ExactArgs(2),
		RunE:  runSection,
	}
}

// loadConfig binds the command's flags onto the config keys they override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	bindings := map[string]string{
		"llm.provider":   "llm-provider",
		"llm.model":      "llm-model",
		"llm.server_url": "llm-url",
		"logger.level":   "log-level",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	return config.Load(v)
}

type engine struct {
	cfg       *config.Config
	logger    *zap.Logger
	analysis  service.AnalysisService
	quiz      service.QuizService
	validator *validation.Validator
}

func newEngine(cmd *cobra.Command) (*engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := logger.NewTo(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))

	var analyzer domain.ContentAnalyzer
	var sections domain.SectionAnalyzer
	if cfg.LLM.Enabled() {
		model, err := llm.NewModel(contextOf(cmd), cfg.LLM)
		if err != nil {
			return nil, err
		}
		a := llm.NewContentAnalyzer(model, cfg.LLM.Timeout, cfg.LLM.Temperature, log)
		analyzer, sections = a, a
	}

	return &engine{
		cfg:       cfg,
		logger:    log,
		analysis:  service.NewAnalysisService(analyzer, sections, nil, log),
		quiz:      service.NewQuizService(nil, cfg.Quiz, log),
		validator: validation.NewValidator(cfg.Quiz.MaxQuestions),
	}, nil
}

// readDocument returns the classification name and extracted text of path.
func (e *engine) readDocument(cmd *cobra.Command, path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > e.cfg.Upload.MaxBytes {
		return "", "", domain.NewContentTooLargeError(len(data), e.cfg.Upload.MaxBytes)
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = filepath.Base(path)
	}

	text, err := extract.FromBytes(filepath.Base(path), data)
	if err != nil {
		return "", "", err
	}
	return name, text, nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	name, text, err := e.readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("num-questions")
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	req := &dto.GenerateQuizRequest{
		Filename:     name,
		Content:      text,
		NumQuestions: &n,
		Topic:        topic,
		Difficulty:   difficulty,
	}
	if errs := e.validator.ValidateGenerateQuizRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := e.quiz.GenerateQuiz(contextOf(cmd), req)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	name, text, err := e.readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	result := e.analysis.Analyze(contextOf(cmd), name, text)
	return writeJSON(cmd.OutOrStdout(), dto.AnalysisResponse{
		Success:     true,
		Analysis:    result.Analysis,
		GeneratedBy: result.GeneratedBy,
	})
}

func runSection(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	section, errs := e.validator.ValidateSection(args[0])
	if len(errs) > 0 {
		return errs
	}
	name, text, err := e.readDocument(cmd, args[1])
	if err != nil {
		return err
	}

	result := e.analysis.AnalyzeSection(contextOf(cmd), section, name, text)
	return writeJSON(cmd.OutOrStdout(), dto.SectionResponse{
		Success:     true,
		Section:     string(result.Section),
		Items:       result.Items,
		GeneratedBy: result.GeneratedBy,
	})
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
