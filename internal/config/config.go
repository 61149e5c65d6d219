package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig           `toml:"server"`
	Data   DataConfig             `toml:"data"`
	Ingest model.IngestVocabulary `toml:"ingest"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20742,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Ingest: model.DefaultVocabulary(),
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
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

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyVocabularyDefaults(&config.Ingest)

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("FC_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// applyVocabularyDefaults 配置里留空的词表段落回落到默认词表
// 覆盖是整段替换，不做逐项合并
func applyVocabularyDefaults(vocab *model.IngestVocabulary) {
	defaults := model.DefaultVocabulary()
	if len(vocab.Fields.OrderID) == 0 {
		vocab.Fields.OrderID = defaults.Fields.OrderID
	}
	if len(vocab.Fields.DeliveryDate) == 0 {
		vocab.Fields.DeliveryDate = defaults.Fields.DeliveryDate
	}
	if len(vocab.Fields.Items) == 0 {
		vocab.Fields.Items = defaults.Fields.Items
	}
	if len(vocab.Fields.Notes) == 0 {
		vocab.Fields.Notes = defaults.Fields.Notes
	}
	if len(vocab.PackagingCodes) == 0 {
		vocab.PackagingCodes = defaults.PackagingCodes
	}
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
