// Package main is the entry point for the sol CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/james-see/sol/pkg/api"
	"github.com/james-see/sol/pkg/config"
	"github.com/james-see/sol/pkg/scale"
	"github.com/james-see/sol/pkg/tuning"
	"github.com/james-see/sol/pkg/tuning/systems"
	"github.com/james-see/sol/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	systemName string
	debug      bool
	serverPort int

	scaleMode  modeValue
	scaleTonic string
	scaleFrom  int
	scaleTo    int
	scalePitch bool
	scaleDump  bool
)

// logger is replaced in PersistentPreRunE once --debug is known
var logger = slog.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sol",
	Short: "Resolve scale degrees and note names into pitches",
	Long: `sol computes frequencies from scale degrees, given a tuning system,
a mode (interval pattern) and a tonic.

Examples:
  sol frequency A4 C#5 48
  sol step Bb3
  sol scale --mode dorian --tonic D4 --from 1 --to 15
  sol scale --mode 2,1,2,2,1,3,1 --tonic A3 --pitch
  sol modes
  sol tui
  sol serve --port 8080`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency <step|note>...",
	Short: "Print the frequency of steps or note names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFrequency,
}

var stepCmd = &cobra.Command{
	Use:   "step <note>...",
	Short: "Print the step of note names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStep,
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Print the steps and frequencies of a scale",
	Args:  cobra.NoArgs,
	RunE:  runScale,
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available modes",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List available tuning systems",
	Args:  cobra.NoArgs,
	RunE:  runSystems,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive scale explorer",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file with systems and modes")
	rootCmd.PersistentFlags().StringVarP(&systemName, "system", "s", "", "Tuning system (default from config, 12tet)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// scale command
	scaleCmd.Flags().VarP(&scaleMode, "mode", "m", "Mode name or interval list (default from config)")
	scaleCmd.Flags().StringVarP(&scaleTonic, "tonic", "t", "", "Tonic step or note name (default from config)")
	scaleCmd.Flags().IntVar(&scaleFrom, "from", 1, "First scale degree")
	scaleCmd.Flags().IntVar(&scaleTo, "to", 0, "Last scale degree (default one octave above --from)")
	scaleCmd.Flags().BoolVarP(&scalePitch, "pitch", "p", false, "Print frequencies only")
	scaleCmd.Flags().BoolVar(&scaleDump, "dump", false, "Dump the resolved degrees")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(frequencyCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(systemsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures the shared slog logger
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	logger.Debug("loading config", "path", configPath)
	return config.Load(configPath)
}

func runFrequency(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.System(systemName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		freq, err := tuning.FrequencyOf(sys, tuning.ParseKey(arg))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s Hz\n", arg, formatHz(freq))
	}
	return nil
}

func runStep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sys, err := cfg.System(systemName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		step, err := tuning.StepOf(sys, tuning.NameKey(arg))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%d\n", arg, step)
	}
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := cfg.Scale(scaleMode.String(), scaleTonic, systemName, scalePitch)
	if err != nil {
		return err
	}
	logger.Debug("resolved scale", "scale", s.String(), "tonic", s.Tonic(), "system", fmt.Sprint(s.System()))

	if err := scale.CheckDegree(scaleFrom); err != nil {
		return err
	}
	to := scaleTo
	if !cmd.Flags().Changed("to") {
		to = scaleFrom + s.Mode().Len()
	}
	degrees, err := s.Range(scaleFrom, to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scaleDump {
		spew.Fdump(out, degrees)
		return nil
	}

	_, named := s.System().(*systems.TwelveTone)
	for _, d := range degrees {
		if s.PitchMode() {
			fmt.Fprintf(out, "%d\t%s\n", d.Degree, formatHz(s.At(d.Degree)))
			continue
		}
		note := ""
		if named {
			note, _ = systems.NoteName(d.Step)
		}
		fmt.Fprintf(out, "%d\t%d\t%s\t%s Hz\n", d.Degree, d.Step, note, formatHz(d.Frequency))
	}
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range cfg.ModeNames() {
		m, err := cfg.Mode(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %s\n", name, m.FormatIntervals())
	}
	return nil
}

func runSystems(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range cfg.SystemNames() {
		sys, err := cfg.System(name)
		if err != nil {
			return err
		}
		marker := " "
		if strings.EqualFold(name, cfg.Defaults.System) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %s\n", marker, name, sys)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("starting API server", "port", serverPort)
	return api.StartServer(serverPort, cfg)
}

func formatHz(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
