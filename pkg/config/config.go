// Copyright 2026 fanjia1024
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/spf13/viper"

	"speech-engine/pkg/errors"
)

// Config 引擎进程配置；CLI flag 优先于配置文件与环境变量
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Model   ModelConfig   `mapstructure:"model"`
}

// ServerConfig gRPC 监听配置；socket 非空时优先 unix socket
type ServerConfig struct {
	Socket        string `mapstructure:"socket"`
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	StreamWorkers int    `mapstructure:"stream_workers"` // gRPC stream worker 池大小
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | text
}

// MetricsConfig Prometheus 暴露配置；Addr 为空则不启动 /metrics
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// TracingConfig OpenTelemetry 配置；Enabled 为 false 时完全关闭
type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

// ModelConfig 启动时预加载的模型；ID 为空则不预加载
type ModelConfig struct {
	ID             string   `mapstructure:"id"`
	Name           string   `mapstructure:"name"`
	Path           string   `mapstructure:"path"`
	Providers      []string `mapstructure:"providers"`
	IntraOpThreads int      `mapstructure:"intra_op_threads"`
	VADBackend     string   `mapstructure:"vad_backend"`
}

// Load 读取配置文件（可为空路径，只用默认值 + 环境变量 ENGINE_*）
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.stream_workers", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("model.intra_op_threads", 8)
	v.SetDefault("model.vad_backend", "silero")

	v.SetEnvPrefix("ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
