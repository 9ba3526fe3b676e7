package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "현재 단가표 출력",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("설정 파일 읽기 실패: %w", err)
			}

			labels := make([]string, 0, len(cfg.Prices))
			for label := range cfg.Prices {
				labels = append(labels, label)
			}
			sort.Strings(labels)

			w := cmd.OutOrStdout()
			for _, label := range labels {
				fmt.Fprintf(w, "%s\t%d\n", label, cfg.Prices[label])
			}
			return nil
		},
	}
}
