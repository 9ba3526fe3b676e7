package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"baljuseo/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig     `toml:"server"`
	Order  OrderConfig      `toml:"order"`
	Prices map[string]int64 `toml:"prices"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	MaxUploadMB int  `toml:"max_upload_mb"`
}

// OrderConfig 发注书输出配置
// 指针字段为空时沿用版本默认值
type OrderConfig struct {
	Version      int    `toml:"version"`
	BusinessName string `toml:"business_name"`
	BoxUnit      int    `toml:"box_unit"`
	VolumeUnit   int    `toml:"volume_unit"`
	Timezone     string `toml:"timezone,omitempty"`
	DateLayout   string `toml:"date_layout,omitempty"`
	SummarySheet *bool  `toml:"summary_sheet,omitempty"`
	SortedSheet  *bool  `toml:"sorted_sheet,omitempty"`
	UnitColumns  *bool  `toml:"unit_columns,omitempty"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
	PricesFound   bool
}

// ConfigEnv 指定配置文件路径的环境变量
const ConfigEnv = "BALJUSEO_CONFIG"

// DefaultPrices 默认单价表（원）
func DefaultPrices() map[string]int64 {
	return map[string]int64{
		"14mm이상 400g": 15000,
		"14mm이상 600g": 21000,
		"14mm이상 1kg":  33000,
		"16mm이상 400g": 18000,
		"16mm이상 600g": 25000,
		"16mm이상 1kg":  39000,
		"18mm이상 400g": 22000,
		"18mm이상 600g": 30000,
		"18mm이상 1kg":  47000,
	}
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        20262,
			DevMode:     false,
			MaxUploadMB: 10,
		},
		Order: OrderConfig{
			Version:      model.LatestVersion,
			BusinessName: "청정농원",
			BoxUnit:      1,
			VolumeUnit:   60,
		},
		Prices: DefaultPrices(),
	}
}

func tableSpecified(data []byte, table, key string) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	tableAny, ok := raw[table]
	if !ok {
		return false
	}
	if key == "" {
		return true
	}

	tableMap, ok := tableAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = tableMap[key]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 配置文件路径：环境变量优先，否则为可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	if v := strings.TrimSpace(os.Getenv(ConfigEnv)); v != "" {
		return v
	}
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 从默认位置加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadConfigFrom(DefaultConfigPath())
}

// LoadConfigFrom 从指定路径加载配置；文件不存在时返回默认配置
func LoadConfigFrom(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = tableSpecified(data, "server", "port")
	info.PricesFound = tableSpecified(data, "prices", "")

	// [prices] 整表替换默认单价，而不是逐项合并
	if info.PricesFound {
		config.Prices = nil
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, fmt.Errorf("解析配置失败 %s: %w", path, err)
	}

	return config, info, nil
}

// SaveConfig 保存配置到指定路径
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Profile 由配置解析出输出版本特性
func (c *AppConfig) Profile() (model.Profile, error) {
	o := c.Order
	version := o.Version
	if version == 0 {
		version = model.LatestVersion
	}

	p, err := model.ProfileForVersion(version)
	if err != nil {
		return model.Profile{}, err
	}

	p.BusinessName = strings.TrimSpace(o.BusinessName)
	if o.BoxUnit != 0 {
		p.BoxUnit = o.BoxUnit
	}
	if o.VolumeUnit != 0 {
		p.VolumeUnit = o.VolumeUnit
	}
	if o.DateLayout != "" {
		p.DateLayout = o.DateLayout
	}
	if o.Timezone != "" {
		loc, err := time.LoadLocation(o.Timezone)
		if err != nil {
			return model.Profile{}, fmt.Errorf("无效的时区 %q: %w", o.Timezone, err)
		}
		p.Location = loc
	}
	if o.SummarySheet != nil {
		p.SummarySheet = *o.SummarySheet
		if !p.SummarySheet {
			p.SummaryStyling = false
		}
	}
	if o.SortedSheet != nil {
		p.SortedSheet = *o.SortedSheet
	}
	if o.UnitColumns != nil {
		p.UnitColumns = *o.UnitColumns
	}

	return p, nil
}

// PriceTable 单价表（启动后只读）
func (c *AppConfig) PriceTable() model.PriceTable {
	return model.NewPriceTable(c.Prices)
}

// MaxUploadBytes 上传大小上限
func (c *AppConfig) MaxUploadBytes() int64 {
	mb := c.Server.MaxUploadMB
	if mb <= 0 {
		mb = 10
	}
	return int64(mb) * 1024 * 1024
}
