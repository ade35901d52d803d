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
	"speech-engine/internal/audio"
	"speech-engine/internal/diar"
	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/pkg/log"
)

// diarizerFactory 由具体推理后端在各自的构建文件里注入；
// 返回的 kind 决定管线走 pyannote 还是 sortformer 分支。
var diarizerFactory func(spec model.Spec, token string) (kind string, handle any, err error)

func newLoader() model.Loader {
	return func(spec model.Spec, token string) (*model.Loaded, error) {
		if diarizerFactory == nil {
			return nil, fmt.Errorf("no diarizer backend registered for model %q", spec.ModelName)
		}
		kind, handle, err := diarizerFactory(spec, token)
		if err != nil {
			return nil, err
		}
		return &model.Loaded{Kind: kind, Handle: handle}, nil
	}
}

func newServeCmd() *cobra.Command {
	var flags app.ServeFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动说话人分离引擎 gRPC 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(flags)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), app.Options[diar.JobParams]{
				Name:   "diar-engine",
				Config: cfg,
				Loader: newLoader(),
				NewPipeline: func(models *model.Manager, logger *log.Logger) enginepipeline.Pipeline[diar.JobParams] {
					return diar.NewPipeline(models, audio.WAVDecoder{}, logger)
				},
				Parse: diar.ParseParams,
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
		Use:           "diar-engine",
		Short:         "长驻说话人分离推理引擎",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
