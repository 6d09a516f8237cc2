package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mahi-cyberaware/vehicleinfo/internal/client"
	"github.com/mahi-cyberaware/vehicleinfo/internal/config"
	"github.com/mahi-cyberaware/vehicleinfo/internal/logger"
	"github.com/mahi-cyberaware/vehicleinfo/internal/plate"
	"github.com/mahi-cyberaware/vehicleinfo/internal/report"
	"github.com/mahi-cyberaware/vehicleinfo/internal/service"
)

func newRootCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:           "vehicleinfo [registration-number]",
		Short:         "Look up Indian RTO vehicle registration details",
		Long:          "Looks up a vehicle's registration record from the RapidAPI RC provider,\nfalling back to demo data when the lookup fails.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), args, save)
		},
	}
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the report to a timestamped file")

	cmd.AddCommand(newServeCommand())

	return cmd
}

func runLookup(ctx context.Context, args []string, save bool) error {
	printBanner()

	errText := color.New(color.FgRed, color.Bold)
	warnText := color.New(color.FgYellow, color.Bold)

	cfg, err := config.Load()
	if err != nil {
		errText.Fprintf(os.Stderr, "❌ ERROR: %v\n", err)
		fmt.Fprintln(os.Stderr, "Create a .env file with your RapidAPI key (see .env.example).")
		return err
	}

	var plateNo string
	if len(args) > 0 {
		plateNo = plate.Normalize(args[0])
	} else {
		plateNo, err = promptPlate()
		if err != nil {
			return err
		}
	}

	if !plate.Valid(plateNo) {
		errText.Fprintln(os.Stderr, "❌ Invalid format. Use e.g., MH02FB2727")
		return service.ErrInvalidPlate
	}

	log := logger.New(cfg.Environment)
	lookupService := service.NewLookupService(client.NewFromConfig(cfg), log)

	fmt.Printf("\n🔎 Fetching details for %s...\n", warnText.Sprint(plateNo))
	fmt.Println("🌐 Using live API...")

	result, err := lookupService.Lookup(ctx, plateNo)
	if err != nil {
		errText.Fprintf(os.Stderr, "❌ Lookup failed: %v\n", err)
		return err
	}

	if !result.Live() {
		warnText.Printf("⚠️  API issue: %s\n", result.FallbackReason)
		if result.RawPayload != nil {
			fmt.Println("\n📦 Raw response received:")
			fmt.Println(indentJSON(result.RawPayload))
		}
		fmt.Println("\n🔄 Falling back to demo data...")
	}

	rendered := report.Render(result.Record, result.Source)
	fmt.Println("\n" + rendered)

	if save {
		writer := report.NewWriter(cfg.Report.Dir)
		content := report.Compose(result.Plate, result.Source, rendered, time.Now())
		path, err := writer.Save(result.Plate, content)
		if err != nil {
			// Save failure does not touch the exit status; the result is
			// already on screen.
			errText.Printf("❌ Failed to save file: %v\n", err)
		} else {
			fmt.Printf("💾 Output saved to: %s\n", path)
		}
	}

	return nil
}

func printBanner() {
	banner := color.New(color.FgCyan, color.Bold)
	banner.Println("╔══════════════════════════════════════════╗")
	banner.Println("║         VEHICLEINFO - RTO LOOKUP         ║")
	banner.Println("║          Tool by: MAHI-CYBERAWARE        ║")
	banner.Println("╚══════════════════════════════════════════╝")
}

func promptPlate() (string, error) {
	fmt.Print("Enter vehicle number (e.g., PB65AM0008): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read vehicle number: %w", err)
	}
	return plate.Normalize(line), nil
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
