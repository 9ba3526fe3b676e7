// Command baljuctl 在命令行下把配送清单转换为发注书
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"baljuseo/internal/config"
)

var (
	configPath string
	version    int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "baljuctl",
		Short:         "배송리스트 → 발주서 변환 (명령행)",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config.toml 경로 (env: "+config.ConfigEnv+")")
	root.PersistentFlags().IntVar(&version, "order-version", 0, "발주서 버전 1-4 (기본: config.toml)")

	root.AddCommand(newConvertCmd(), newNormalizeCmd(), newPricesCmd(), newInitCmd())
	return root
}

// loadConfig 读取配置并应用命令行覆盖
func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if configPath != "" {
		cfg, _, err = config.LoadConfigFrom(configPath)
	} else {
		cfg, _, err = config.LoadConfigWithInfo()
	}
	if err != nil {
		return nil, err
	}
	if version != 0 {
		cfg.Order.Version = version
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
