/*
 * Copyright 2025 The SoqlKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package soql

import (
	"github.com/soqlkit/soql/logger"
	"github.com/soqlkit/soql/parser"
)

// config 聚合façade层的解析配置
type config struct {
	parserCfg parser.Config
	logging   bool
	logLevel  logger.Level
}

// Option 定义解析的配置选项类型
type Option func(*config)

// WithContinueIfErrors 遇到语法错误时继续尽力解析，
// ParseQuery返回尽力构建的AST而不返回error；
// 完全无法构建查询时（如缺少SELECT或FROM）仍返回*parser.SyntaxErrors
func WithContinueIfErrors() Option {
	return func(c *config) {
		c.parserCfg.ContinueOnError = true
	}
}

// WithLogging 开启解析跟踪日志，输出到标准错误
func WithLogging() Option {
	return func(c *config) {
		c.logging = true
	}
}

// WithLogLevel 开启日志并设置级别
func WithLogLevel(level logger.Level) Option {
	return func(c *config) {
		c.logging = true
		c.logLevel = level
	}
}

// WithoutSubqueryFields 从投影中剔除子查询字段
func WithoutSubqueryFields() Option {
	return func(c *config) {
		c.parserCfg.IncludeSubqueryAsField = false
	}
}

// WithMaxDepth 设置子查询和条件括号的嵌套深度上限
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.parserCfg.MaxDepth = depth
	}
}
