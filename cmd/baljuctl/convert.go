package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"baljuseo/internal/converter"
	"baljuseo/internal/model"
)

func newConvertCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <input.xlsx>",
		Short: "배송리스트 파일을 발주서로 변환",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); err != nil {
				return fmt.Errorf("파일을 찾을 수 없습니다: %s", inputPath)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("설정 파일 읽기 실패: %w", err)
			}
			profile, err := cfg.Profile()
			if err != nil {
				return err
			}

			conv := converter.NewConverter(profile, cfg.PriceTable())
			result, err := conv.ConvertFile(inputPath)
			if err != nil {
				return fmt.Errorf("변환 실패: %w", err)
			}
			defer result.Close()

			out := outputPath
			if out == "" {
				out = filepath.Join(filepath.Dir(inputPath), result.FileName)
			}
			if err := result.File.SaveAs(out); err != nil {
				return fmt.Errorf("출력 파일 저장 실패: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%d행)\n", out, result.Lines)
			if profile.SummarySheet {
				printSummary(cmd, result.Summary)
			}
			for _, label := range result.UnpricedLabels {
				fmt.Fprintf(cmd.ErrOrStderr(), "경고: 단가가 등록되지 않은 상품 %q (0원으로 계산)\n", label)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "출력 파일 경로 (기본: 입력 파일과 같은 폴더)")
	return cmd
}

func printSummary(cmd *cobra.Command, report model.SummaryReport) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "상품\t수량\t단가\t합계\t")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", e.Label, e.Quantity, e.UnitPrice, e.LineTotal)
	}
	fmt.Fprintf(tw, "\t%d\t\t%d\t\n", report.Total.Quantity, report.Total.LineTotal)
	_ = tw.Flush()
}
