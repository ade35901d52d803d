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

// Package app 引擎进程的装配与生命周期：配置、日志、追踪、
// gRPC 服务与 /metrics 监听。ASR 与分离引擎共用本入口，
// 仅注入的管线、参数解析与模型加载器不同。
package app

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	grpcapi "speech-engine/internal/api/grpc"
	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/internal/engine/runner"
	"speech-engine/internal/engine/status"
	"speech-engine/pkg/config"
	"speech-engine/pkg/log"
	"speech-engine/pkg/metrics"
	"speech-engine/pkg/tracing"
)

// ServeFlags serve 子命令的命令行覆盖项；零值表示沿用配置文件
type ServeFlags struct {
	ConfigPath  string
	Socket      string
	Host        string
	Port        int
	LogLevel    string
	MetricsAddr string
}

// LoadConfig 读配置文件并用命令行 flag 覆盖
func LoadConfig(flags ServeFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if flags.Socket != "" {
		cfg.Server.Socket = flags.Socket
	}
	if flags.Host != "" {
		cfg.Server.Host = flags.Host
	}
	if flags.Port != 0 {
		cfg.Server.Port = flags.Port
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.MetricsAddr != "" {
		cfg.Metrics.Addr = flags.MetricsAddr
	}
	return cfg, nil
}

// Options 单个引擎进程的装配参数
type Options[P any] struct {
	Name        string
	Config      *config.Config
	Loader      model.Loader
	NewPipeline func(models *model.Manager, logger *log.Logger) enginepipeline.Pipeline[P]
	Parse       grpcapi.ParamsParser[P]
}

// Run 装配并运行引擎直至 ctx 取消；返回前等待活跃 Job 收尾
func Run[P any](ctx context.Context, opts Options[P]) error {
	cfg := opts.Config
	logger, err := log.NewLogger(&log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.OTelConfig{
			ServiceName:    opts.Name,
			ExportEndpoint: cfg.Tracing.Endpoint,
			Insecure:       cfg.Tracing.Insecure,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()
	}

	models := model.NewManager(opts.Loader)
	store := status.NewStore()
	run := runner.NewRunner[P](opts.NewPipeline(models, logger), store, logger)
	svc := grpcapi.NewService[P](models, run, store, opts.Parse, logger)

	// 配置指定了模型就在开始服务前预加载
	if cfg.Model.ID != "" {
		_, err := models.Load(model.Spec{
			ModelID:        cfg.Model.ID,
			ModelName:      cfg.Model.Name,
			ModelPath:      cfg.Model.Path,
			Providers:      cfg.Model.Providers,
			IntraOpThreads: cfg.Model.IntraOpThreads,
			VADBackend:     cfg.Model.VADBackend,
		}, "")
		if err != nil {
			return err
		}
		logger.Info("model preloaded", "model_id", cfg.Model.ID, "model_name", cfg.Model.Name)
	}

	lis, addr, err := grpcapi.Listen(cfg.Server.Socket, cfg.Server.Host, cfg.Server.Port)
	if err != nil {
		return err
	}
	server := grpcapi.NewServer(cfg.Server.StreamWorkers)
	svc.Register(server)
	logger.Info("engine listening", "engine", opts.Name, "addr", addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcapi.Serve(ctx, server, lis, logger)
	})
	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			return serveMetrics(ctx, cfg.Metrics.Addr, logger)
		})
	}

	err = g.Wait()
	run.Wait()
	return err
}

// serveMetrics 暴露 Prometheus 文本格式的 /metrics
func serveMetrics(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		if err := metrics.WritePrometheus(w); err != nil {
			logger.Error("write metrics", "error", err)
		}
	})
	srv := &http.Server{Addr: addr, Handler: mux}
	logger.Info("metrics listening", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
