package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"baljuseo/internal/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [config.toml]",
		Short: "기본 설정 파일(단가표 포함) 생성",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("이미 존재하는 파일입니다 (덮어쓰려면 --force): %s", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("설정 파일 저장 실패: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 생성: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "기존 파일 덮어쓰기")
	return cmd
}
