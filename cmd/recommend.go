package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/system"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

var (
	recRAM  float64
	recDisk float64
	recCPU  int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend profiles that fit this machine",
	Long: `Measure RAM, free disk and CPU cores (or use the values from the flags
and the capacity section of he2plus.yml) and list the profiles whose
requirements fit, most useful first.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().Float64Var(&recRAM, "ram", 0, "total RAM in GB instead of probing")
	recommendCmd.Flags().Float64Var(&recDisk, "disk", 0, "free disk in GB instead of probing")
	recommendCmd.Flags().IntVar(&recCPU, "cpu", 0, "CPU cores instead of probing")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}
	if recRAM > 0 {
		a.cfg.Capacity.RAMTotalGB = recRAM
	}
	if recDisk > 0 {
		a.cfg.Capacity.DiskFreeGB = recDisk
	}
	if recCPU > 0 {
		a.cfg.Capacity.CPUCores = recCPU
	}

	capacity, err := probeCapacity(cmd.Context(), a)
	if err != nil {
		ui.Warn(os.Stderr, err.Error())
	}

	out := cmd.OutOrStdout()
	ui.KeyValue(out, "RAM", fmt.Sprintf("%.1f GB", capacity.RAMTotalGB))
	ui.KeyValue(out, "free disk", fmt.Sprintf("%.1f GB", capacity.DiskFreeGB))
	ui.KeyValue(out, "CPU cores", fmt.Sprintf("%d", capacity.CPUCores))
	fmt.Fprintln(out)

	recommended := a.resolver.Recommendations(capacity)
	if len(recommended) == 0 {
		fmt.Fprintln(out, "No profile fits this machine.")
		return nil
	}
	printProfiles(cmd, recommended)
	return nil
}

// probeCapacity measures the host unless the config pins every value.
func probeCapacity(ctx context.Context, a *app) (model.Capacity, error) {
	if a.cfg.CapacityComplete() {
		return a.cfg.ApplyCapacity(model.Capacity{}), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	probed, err := system.Probe(ctx, system.OSProber{})
	return a.cfg.ApplyCapacity(probed), err
}
