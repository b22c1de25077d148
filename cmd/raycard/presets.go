package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in card presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := config.Presets()
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderPresetsJSON(cmd.OutOrStdout(), presets)
			}
			return renderPresetsTable(cmd.OutOrStdout(), presets)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPresetsTable(w io.Writer, presets []config.Preset) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMODE\tCOLOR\tDESCRIPTION")
	for _, p := range presets {
		cfg := raycard.NewConfig(p.Style.Options()...)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", p.Name, cfg.GlowMode(), cfg.GlowColor(), p.Description)
	}
	return writer.Flush()
}

type presetJSON struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	GlowColor     string  `json:"glow_color"`
	GlowIntensity float64 `json:"glow_intensity"`
	GlowSpread    float64 `json:"glow_spread"`
	BorderRadius  string  `json:"border_radius"`
	Proximity     float64 `json:"proximity"`
	GlowMode      string  `json:"glow_mode"`
	Disabled      bool    `json:"disabled"`
}

// renderPresetsJSON writes each preset resolved against the defaults.
func renderPresetsJSON(w io.Writer, presets []config.Preset) error {
	out := make([]presetJSON, len(presets))
	for i, p := range presets {
		cfg := raycard.NewConfig(p.Style.Options()...)
		out[i] = presetJSON{
			Name:          p.Name,
			Description:   p.Description,
			GlowColor:     cfg.GlowColor(),
			GlowIntensity: cfg.GlowIntensity(),
			GlowSpread:    cfg.GlowSpread(),
			BorderRadius:  cfg.BorderRadius(),
			Proximity:     cfg.Proximity(),
			GlowMode:      cfg.GlowMode().String(),
			Disabled:      cfg.Disabled(),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
