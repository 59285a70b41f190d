package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"entitymatch/internal/preflight"
	"entitymatch/internal/registry"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Registry dataset utilities",
	}
	registryCmd.AddCommand(newRegistryStatusCommand(ctx))
	registryCmd.AddCommand(newRegistryRefreshCommand(ctx))
	return registryCmd
}

func newRegistryStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show registry cache state and run preflight checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printer := message.NewPrinter(language.English)

			status := registry.NewLoader(cfg, ctx.loggerValue()).CacheStatus()
			pairs := [][2]string{
				{"Cache path", status.Path},
				{"Cached", yesNo(status.Cached)},
			}
			if status.Cached {
				pairs = append(pairs,
					[2]string{"Size", printer.Sprintf("%d bytes", status.SizeBytes)},
					[2]string{"Last updated", status.LastUpdated.Format(time.RFC1123)},
					[2]string{"Age", status.Age.Round(time.Minute).String()},
					[2]string{"Fresh", yesNo(status.Fresh)},
				)
			}
			fmt.Fprint(out, renderKeyValues(pairs))
			fmt.Fprintln(out)

			rows := make([][]string, 0, 3)
			allPassed := true
			for _, result := range preflight.RunAll(cmd.Context(), cfg) {
				rows = append(rows, []string{result.Name, passFail(result.Passed), result.Detail})
				if !result.Passed {
					allPassed = false
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
			if !allPassed {
				return fmt.Errorf("one or more preflight checks failed")
			}
			return nil
		},
	}
}

func newRegistryRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Download the registry dataset now, regardless of cache age",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			loader := registry.NewLoader(cfg, ctx.loggerValue())
			bar := newByteProgressBar(cmd.ErrOrStderr(), "registry dataset")
			if err := loader.Refresh(cmd.Context(), true, func(downloaded, total int64) {
				if total > 0 {
					bar.ChangeMax64(total)
				}
				_ = bar.Set64(downloaded)
			}); err != nil {
				return err
			}
			_ = bar.Finish()

			status := loader.CacheStatus()
			printer := message.NewPrinter(language.English)
			printer.Fprintf(cmd.OutOrStdout(), "Registry dataset refreshed: %d bytes at %s\n",
				status.SizeBytes, status.Path)
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
