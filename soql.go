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
	"os"

	"github.com/soqlkit/soql/logger"
	"github.com/soqlkit/soql/parser"
)

// ParseQuery 解析SOQL查询文本并构建Query。
// 存在语法错误且未开启WithContinueIfErrors时返回*parser.SyntaxErrors，
// 开启时返回尽力构建的AST。
//
// 参数:
//   - input: SOQL查询文本
//   - options: 可变长度的配置选项
//
// 返回值:
//   - *parser.Query: 解析得到的查询AST
//   - error: 解析失败时的错误
//
// 示例:
//
//	query, err := soql.ParseQuery("SELECT Id, Name FROM Account WHERE Name = 'Acme'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(query.SObject) // Account
func ParseQuery(input string, options ...Option) (*parser.Query, error) {
	p := parser.NewParserWithConfig(input, newConfig(options))
	return p.Parse()
}

// IsQueryValid 只运行词法和语法分析，返回查询文本是否合法。
// 该函数从不返回错误。
//
// 示例:
//
//	if !soql.IsQueryValid("SELECT Id FROM") {
//	    fmt.Println("invalid query")
//	}
func IsQueryValid(input string, options ...Option) bool {
	p := parser.NewParserWithConfig(input, newConfig(options))
	return p.Validate()
}

// newConfig 应用所有配置选项生成解析配置
func newConfig(options []Option) parser.Config {
	c := config{
		parserCfg: parser.DefaultConfig(),
		logLevel:  logger.DEBUG,
	}
	for _, option := range options {
		option(&c)
	}
	if c.logging {
		c.parserCfg.Logger = logger.New(c.logLevel, os.Stderr)
	}
	return c.parserCfg
}
