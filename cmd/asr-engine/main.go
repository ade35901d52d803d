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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"speech-engine/internal/app"
	"speech-engine/internal/asr"
	"speech-engine/internal/audio"
	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/pkg/log"
)

// recognizerFactory 由具体推理后端（ONNX/NeMo 绑定）在各自的
// 构建文件里注入；为 nil 时 LoadModel 一律失败。
var recognizerFactory func(spec model.Spec) (asr.Recognizer, error)

func newLoader() model.Loader {
	return func(spec model.Spec, token string) (*model.Loaded, error) {
		if recognizerFactory == nil {
			return nil, fmt.Errorf("no recognizer backend registered for model %q", spec.ModelName)
		}
		rec, err := recognizerFactory(spec)
		if err != nil {
			return nil, err
		}
		return &model.Loaded{Kind: "asr", Handle: rec}, nil
	}
}

func newServeCmd() *cobra.Command {
	var flags app.ServeFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 ASR 引擎 gRPC 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(flags)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), app.Options[asr.JobParams]{
				Name:   "asr-engine",
				Config: cfg,
				Loader: newLoader(),
				NewPipeline: func(models *model.Manager, logger *log.Logger) enginepipeline.Pipeline[asr.JobParams] {
					return asr.NewPipeline(models, audio.WAVDecoder{}, logger)
				},
				Parse: asr.ParseParams,
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&flags.ConfigPath, "config", "", "配置文件路径（yaml）")
	fs.StringVar(&flags.Socket, "socket", "", "unix socket 路径，优先于 host:port")
	fs.StringVar(&flags.Host, "host", "", "TCP 监听地址")
	fs.IntVar(&flags.Port, "port", 0, "TCP 监听端口")
	fs.StringVar(&flags.LogLevel, "log-level", "", "日志级别 debug|info|warn|error")
	fs.StringVar(&flags.MetricsAddr, "metrics-addr", "", "/metrics 监听地址，空则不启动")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "asr-engine",
		Short:         "长驻 ASR 推理引擎",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
