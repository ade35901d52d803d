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

// Package errors 提供统一错误辅助，不依赖 internal
package errors

import (
	"errors"
	"fmt"
)

// 引擎运行时哨兵错误；service 层负责映射到 gRPC status code
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArg       = errors.New("invalid argument")
	ErrBusy             = errors.New("engine busy")
	ErrNoModelLoaded    = errors.New("no model loaded")
	ErrLoadFailed       = errors.New("model load failed")
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrCancelled        = errors.New("job cancelled")
)

// Is 透传 errors.Is，调用方无需同时 import 标准库 errors
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap 包装错误并附加消息
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf 带格式的 Wrap
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
