package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tolbek/spindle/internal/config"
	"github.com/tolbek/spindle/internal/logging"
	"github.com/tolbek/spindle/internal/picker"
	"github.com/tolbek/spindle/internal/tui"
	"github.com/tolbek/spindle/internal/wheel"
)

var flags struct {
	mode      string
	value     string
	min       float64
	max       float64
	step      float64
	wrap      bool
	unbounded bool
	source    string
}

var rootCmd = &cobra.Command{
	Use:   "spindle",
	Short: "Spindle - a terminal scroll-wheel value picker",
	Long: `Spindle is a terminal scroll-wheel value picker: pick a time, a date,
a number, or values from your own lists by spinning wheel columns.
The confirmed value is printed to stdout.`,
	RunE: run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.mode, "mode", "m", "", "picker mode: time, hours, spin, date, custom")
	f.StringVarP(&flags.value, "value", "v", "", "initial value in the mode's format")
	f.Float64Var(&flags.min, "min", 0, "lower bound (spin/hours modes)")
	f.Float64Var(&flags.max, "max", 0, "upper bound (spin/hours modes)")
	f.Float64Var(&flags.step, "step", 0, "step between values (spin/hours/time modes)")
	f.BoolVar(&flags.wrap, "wrap", false, "endless scrolling for custom wheels")
	f.BoolVar(&flags.unbounded, "unbounded", false, "spin mode without an upper bound")
	f.StringVarP(&flags.source, "source", "s", "",
		`custom mode data: "a,b,c" for one wheel, "|"-separated lists for
several, "key:value" pairs for captioned entries`)
}

func run(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts, err := pickerOptions(cmd, cfg)
	if err != nil {
		return err
	}

	model, err := tui.InitialModel(cfg, opts)
	if err != nil {
		return fmt.Errorf("initialize picker: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tui.Model); ok && m.Result != "" {
		fmt.Println(m.Result)
	}
	return nil
}

// pickerOptions merges config defaults with command-line flags; a flag
// that was set wins over the config file.
func pickerOptions(cmd *cobra.Command, cfg *config.Config) (picker.Options, error) {
	modeName := cfg.Picker.Mode
	if cmd.Flags().Changed("mode") {
		modeName = flags.mode
	}
	mode, err := picker.ParseMode(modeName)
	if err != nil {
		if suggestion, ok := picker.SuggestMode(modeName); ok {
			return picker.Options{}, fmt.Errorf("unknown mode %q (did you mean %q?)", modeName, suggestion)
		}
		return picker.Options{}, err
	}

	opts := picker.Options{
		Mode:      mode,
		Value:     flags.value,
		Min:       cfg.Picker.Min,
		Max:       cfg.Picker.Max,
		Step:      cfg.Picker.Step,
		Wrap:      cfg.Picker.Wrap,
		Unbounded: flags.unbounded,
	}
	if cmd.Flags().Changed("min") {
		opts.Min = flags.min
	}
	if cmd.Flags().Changed("max") {
		opts.Max = flags.max
	}
	if cmd.Flags().Changed("step") {
		opts.Step = flags.step
	}
	if cmd.Flags().Changed("wrap") {
		opts.Wrap = flags.wrap
	}

	if mode == picker.ModeCustom {
		if flags.source == "" {
			return picker.Options{}, fmt.Errorf("custom mode needs --source")
		}
		opts.Source = parseSource(flags.source)
	}
	return opts, nil
}

// parseSource turns the --source flag into a picker data source. Lists
// are comma-separated; "|" splits per-wheel lists; "key:value" entries
// become captioned options.
func parseSource(s string) any {
	groups := strings.Split(s, "|")
	if len(groups) == 1 {
		return parseSourceGroup(groups[0])
	}
	out := make([]any, len(groups))
	for i, g := range groups {
		out[i] = parseSourceGroup(g)
	}
	return out
}

func parseSourceGroup(g string) any {
	parts := strings.Split(g, ",")
	if strings.Contains(g, ":") {
		opts := make([]wheel.Option, 0, len(parts))
		for _, part := range parts {
			kv := strings.SplitN(part, ":", 2)
			caption := strings.TrimSpace(kv[0])
			value := any(caption)
			if len(kv) == 2 {
				raw := strings.TrimSpace(kv[1])
				if f, err := wheel.ParseNumber(raw); err == nil {
					value = f
				} else {
					value = raw
				}
			}
			opts = append(opts, wheel.Option{Caption: caption, Value: value})
		}
		return opts
	}

	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, strings.TrimSpace(part))
	}
	return values
}
