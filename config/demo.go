package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	demoOnce   sync.Once
	demoConfig *DemoConfig
)

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level       string   `yaml:"level"`
	Encoding    string   `yaml:"encoding"`
	OutputPaths []string `yaml:"outputPaths"`
}

// DemoConfig 演示流程配置
// 零配置时的默认值完整复现标准演示行为
type DemoConfig struct {
	// Formats 格式校验器放行的类型标签
	Formats []string `yaml:"formats"`
	// Strategy 默认处理策略名称（print 或 save）
	Strategy string `yaml:"strategy"`
	// Documents 演示集合里的文档类型，按插入顺序
	Documents []string      `yaml:"documents"`
	Logging   LoggingConfig `yaml:"logging"`
}

// GetDemoConfig 获取演示配置单例
func GetDemoConfig() *DemoConfig {
	demoOnce.Do(func() {
		demoConfig = loadDemoConfig()
	})
	return demoConfig
}

func loadDemoConfig() *DemoConfig {
	// 加载 .env 文件，找不到就退回环境变量
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, falling back to environment variables")
	}

	cfg := defaultDemoConfig()

	// YAML 配置文件覆盖默认值
	if path := os.Getenv("DOCFLOW_CONFIG"); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			log.Printf("Warning: can't load config file %s: %v", path, err)
		}
	}

	// 环境变量优先级最高
	if strategy := os.Getenv("DOCFLOW_STRATEGY"); strategy != "" {
		cfg.Strategy = strategy
	}
	if level := os.Getenv("DOCFLOW_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg
}

func defaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Formats:   []string{"PDF", "TXT", "DOCX"},
		Strategy:  "print",
		Documents: []string{"PDF", "TXT"},
		Logging: LoggingConfig{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
		},
	}
}

func overlayFile(cfg *DemoConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
