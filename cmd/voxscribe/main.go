package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/voxscribe/voxscribe/internal/config"
	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/pipeline"
	"github.com/voxscribe/voxscribe/internal/provider"
	"github.com/voxscribe/voxscribe/internal/recognizer"
	"github.com/voxscribe/voxscribe/internal/sink"
	"github.com/voxscribe/voxscribe/internal/tui"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "voxscribe",
	Short: "Multi-provider speech-to-text for the terminal",
}

func init() {
	rootCmd.AddCommand(
		listenCmd(),
		transcribeCmd(),
		interactiveCmd(),
		configureCmd(),
		doctorCmd(),
		providersCmd(),
		languagesCmd(),
		versionCmd(),
	)
}

// transcribeFlags are shared by listen and transcribe.
type transcribeFlags struct {
	provider string
	language string
	save     bool
	output   string
}

func (f *transcribeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.provider, "provider", "", "recognition provider (google, sphinx, wit, bing, houndify)")
	cmd.Flags().StringVar(&f.language, "language", "", "BCP-47 language tag (e.g. en-US)")
	cmd.Flags().BoolVar(&f.save, "save", false, "save the transcript to a timestamped file")
	cmd.Flags().StringVar(&f.output, "output", "", "save the transcript to this file name")
}

func listenCmd() *cobra.Command {
	var flags transcribeFlags

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Record one utterance from the microphone and transcribe it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(&flags)
			if err != nil {
				return err
			}

			p, err := pipeline.New(cfg.ToPipelineConfig())
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			fmt.Println(tui.StyleMuted.Render("Listening... speak now (ctrl-c to cancel)"))
			result := p.TranscribeMicrophone(ctx)
			return finishResult(cfg, result, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func transcribeCmd() *cobra.Command {
	var flags transcribeFlags

	cmd := &cobra.Command{
		Use:   "transcribe <file.mp3>",
		Short: "Transcribe an MP3 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(&flags)
			if err != nil {
				return err
			}

			mp3, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			p, err := pipeline.New(cfg.ToPipelineConfig())
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			result := p.TranscribeMP3(ctx, mp3)
			return finishResult(cfg, result, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func interactiveCmd() *cobra.Command {
	var flags transcribeFlags

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Transcribe utterances in a loop, reloading config on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(&flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runInteractive(flags *transcribeFlags) error {
	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := manager.StartWatching(ctx); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	defer manager.Stop()

	fmt.Println(tui.Logo())
	fmt.Println()
	fmt.Println(tui.StyleMuted.Render("Press Enter to record, q then Enter to quit."))
	fmt.Println(tui.StyleSubtle.Render("Edits to the config file apply to the next recording."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if strings.TrimSpace(scanner.Text()) == "q" {
			return nil
		}

		// flags are applied on top of the freshly reloaded config
		cfg := manager.GetConfig()
		if err := applyFlags(cfg, flags); err != nil {
			fmt.Println(tui.StyleError.Render(err.Error()))
			continue
		}

		p, err := pipeline.New(cfg.ToPipelineConfig())
		if err != nil {
			fmt.Println(tui.StyleError.Render(err.Error()))
			continue
		}

		fmt.Println(tui.StyleMuted.Render("Listening... speak now"))
		result := p.TranscribeMicrophone(ctx)
		if ctx.Err() != nil {
			return nil
		}

		if !result.Ok() {
			fmt.Println(renderFailure(result.Failure))
			continue
		}

		fmt.Println(result.Text)
		if flags.save || flags.output != "" {
			saveTranscript(cfg, result.Text, flags.output)
		}
	}
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration menu for voxscribe.
This will guide you through setting up:
- Recognition provider and language
- Provider credentials (Wit.ai, Bing, Houndify)
- Transcript polish and output location`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.Run(cfg)
	if err != nil {
		return fmt.Errorf("configuration menu error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.StyleSuccess.Render("Configuration saved."))

	configPath, _ := config.GetConfigPath()
	fmt.Printf("Config file location: %s\n", configPath)
	return nil
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the external tools voxscribe depends on",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := []struct {
				binary string
				status deps.Status
				usedBy string
			}{
				{deps.FFmpegBinary, deps.CheckFFmpeg(), "MP3 transcription"},
				{deps.PwRecordBinary, deps.CheckPwRecord(), "microphone capture"},
				{deps.SphinxBinary, deps.CheckSphinx(), "the sphinx provider"},
			}

			allInstalled := true
			for _, c := range checks {
				if c.status.Installed {
					line := fmt.Sprintf("[x] %s (%s)", c.binary, c.status.Path)
					if c.status.Version != "" {
						line += " " + c.status.Version
					}
					fmt.Println(tui.StyleSuccess.Render(line))
				} else {
					allInstalled = false
					fmt.Println(tui.StyleWarning.Render(fmt.Sprintf("[ ] %s - needed for %s", c.binary, c.usedBy)))
				}
			}

			if !allInstalled {
				fmt.Println()
				fmt.Println(tui.StyleMuted.Render("Missing tools only block the features that use them."))
			}
			return nil
		},
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the supported recognition providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range provider.List() {
				line := fmt.Sprintf("%-10s %s", spec.ID, spec.Label)
				switch spec.Credentials {
				case provider.CredentialsNone:
					line += " (no credentials needed)"
				default:
					line += fmt.Sprintf(" (requires %s)", strings.Join(spec.EnvVars, ", "))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported recognition languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range language.List() {
				fmt.Printf("%-7s %s\n", l.Tag, l.Name)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the voxscribe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(flags *transcribeFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg, flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags *transcribeFlags) error {
	if flags.provider != "" {
		cfg.Recognition.Provider = flags.provider
	}
	if flags.language != "" {
		cfg.Recognition.Language = flags.language
	}
	return cfg.Validate()
}

func finishResult(cfg *config.Config, result recognizer.Result, flags *transcribeFlags) error {
	if !result.Ok() {
		fmt.Println(renderFailure(result.Failure))
		os.Exit(1)
	}

	fmt.Println(result.Text)

	if flags.save || flags.output != "" {
		saveTranscript(cfg, result.Text, flags.output)
	}
	return nil
}

func saveTranscript(cfg *config.Config, text, filename string) {
	path, err := sink.New(cfg.OutputDir()).Save(text, filename)
	if err != nil {
		fmt.Println(tui.StyleError.Render(fmt.Sprintf("Failed to save transcript: %v", err)))
		return
	}
	fmt.Println(tui.StyleMuted.Render("Saved to " + path))
}

func renderFailure(f *recognizer.Failure) string {
	return tui.StyleError.Render(f.Message)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
