package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"baljuseo/internal/parser"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <option text>...",
		Short: "등록옵션명을 상품 라벨로 변환해 확인",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("설정 파일 읽기 실패: %w", err)
			}
			prices := cfg.PriceTable()

			w := cmd.OutOrStdout()
			for _, raw := range args {
				label := parser.NormalizeOption(raw)
				note := ""
				if !parser.IsKnownOption(raw) {
					note = " (인식 불가)"
				} else if !prices.Has(label) {
					note = " (단가 없음)"
				}
				fmt.Fprintf(w, "%s\t%s\t%d%s\n", raw, label, prices.Price(label), note)
			}
			return nil
		},
	}
}
