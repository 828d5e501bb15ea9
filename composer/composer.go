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

// Package composer renders a parsed SOQL AST back into query text.
// Together with the parser it provides round-trip formatting: parse a
// query, transform the AST, format it again.
package composer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/soqlkit/soql/parser"
)

// Format 把查询AST渲染为单行SOQL文本
func Format(q *parser.Query) string {
	w := &writer{sep: " "}
	w.writeStatement(&q.QueryBase, fromTarget(q.SObjectPrefix, q.SObject, q.SObjectAlias), q.UsingScope)
	return w.buf.String()
}

// FormatPretty 把查询AST渲染为多行SOQL文本，每个子句一行，
// 嵌套子查询保持单行
func FormatPretty(q *parser.Query) string {
	w := &writer{sep: "\n"}
	w.writeStatement(&q.QueryBase, fromTarget(q.SObjectPrefix, q.SObject, q.SObjectAlias), q.UsingScope)
	return w.buf.String()
}

// FormatSubquery 把子查询AST渲染为不带括号的SOQL文本
func FormatSubquery(sq *parser.Subquery) string {
	w := &writer{sep: " "}
	w.writeStatement(&sq.QueryBase, fromTarget(sq.SObjectPrefix, sq.RelationshipName, sq.SObjectAlias), "")
	return w.buf.String()
}

// writer 按子句拼接查询文本，sep控制子句间的分隔
type writer struct {
	buf bytes.Buffer
	sep string
}

// fromTarget 拼装FROM目标：命名空间前缀、对象名和别名
func fromTarget(prefix []string, name, alias string) string {
	target := name
	if len(prefix) > 0 {
		target = strings.Join(prefix, ".") + "." + name
	}
	if alias != "" {
		target += " " + alias
	}
	return target
}

func (w *writer) writeStatement(base *parser.QueryBase, from, usingScope string) {
	w.buf.WriteString("SELECT ")
	w.writeFields(base.Fields)
	w.clause("FROM " + from)
	if usingScope != "" {
		w.clause("USING SCOPE " + usingScope)
	}
	if base.Where != nil {
		w.clause("WHERE ")
		w.writeConditions(base.Where)
	}
	if base.WithSecurityEnforced {
		w.clause("WITH SECURITY_ENFORCED")
	}
	if base.WithDataCategory != nil {
		w.clause("WITH DATA CATEGORY ")
		w.writeDataCategory(base.WithDataCategory)
	}
	if base.GroupBy != nil {
		w.clause("GROUP BY ")
		w.writeGroupBy(base.GroupBy)
	}
	if len(base.OrderBy) > 0 {
		w.clause("ORDER BY ")
		w.writeOrderBy(base.OrderBy)
	}
	if base.Limit != nil {
		w.clause("LIMIT " + strconv.Itoa(*base.Limit))
	}
	if base.Offset != nil {
		w.clause("OFFSET " + strconv.Itoa(*base.Offset))
	}
	if base.For != "" {
		w.clause("FOR " + base.For)
	}
	if base.Update != "" {
		w.clause("UPDATE " + base.Update)
	}
}

// clause 以分隔符开始一个新子句
func (w *writer) clause(s string) {
	w.buf.WriteString(w.sep)
	w.buf.WriteString(s)
}

func (w *writer) writeFields(fields parser.FieldList) {
	for i, f := range fields {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.writeField(f)
	}
}

func (w *writer) writeField(f parser.FieldType) {
	switch f := f.(type) {
	case *parser.Field:
		if f.ObjectPrefix != "" {
			w.buf.WriteString(f.ObjectPrefix)
			w.buf.WriteByte('.')
		}
		w.buf.WriteString(f.Field)
		w.alias(f.Alias)
	case *parser.FieldRelationship:
		parts := make([]string, 0, len(f.Relationships)+2)
		if f.ObjectPrefix != "" {
			parts = append(parts, f.ObjectPrefix)
		}
		parts = append(parts, f.Relationships...)
		parts = append(parts, f.Field)
		w.buf.WriteString(strings.Join(parts, "."))
		w.alias(f.Alias)
	case *parser.FieldFunctionExpression:
		w.buf.WriteString(f.RawValue)
		w.alias(f.Alias)
	case *parser.FieldSubquery:
		w.buf.WriteByte('(')
		w.buf.WriteString(FormatSubquery(f.Subquery))
		w.buf.WriteByte(')')
	case *parser.FieldTypeof:
		w.buf.WriteString("TYPEOF ")
		w.buf.WriteString(f.Field)
		for _, cond := range f.Conditions {
			if cond.Type == "ELSE" {
				w.buf.WriteString(" ELSE ")
			} else {
				w.buf.WriteString(" WHEN ")
				w.buf.WriteString(cond.ObjectType)
				w.buf.WriteString(" THEN ")
			}
			w.buf.WriteString(strings.Join(cond.FieldList, ", "))
		}
		w.buf.WriteString(" END")
	}
}

func (w *writer) alias(alias string) {
	if alias != "" {
		w.buf.WriteByte(' ')
		w.buf.WriteString(alias)
	}
}

// writeConditions 沿左链输出条件，括号计数还原用户的分组
func (w *writer) writeConditions(c *parser.Condition) {
	for cur := c; cur != nil; cur = cur.Right {
		if cur.LogicalPrefix != "" {
			w.buf.WriteString(cur.LogicalPrefix)
			w.buf.WriteByte(' ')
		}
		w.buf.WriteString(strings.Repeat("(", cur.OpenParen))
		if cur.Fn != nil {
			w.buf.WriteString(cur.Fn.RawValue)
		} else {
			w.buf.WriteString(cur.Field)
		}
		w.buf.WriteByte(' ')
		w.buf.WriteString(cur.Operator)
		w.buf.WriteByte(' ')
		switch {
		case cur.ValueQuery != nil:
			w.buf.WriteByte('(')
			w.buf.WriteString(FormatSubquery(cur.ValueQuery))
			w.buf.WriteByte(')')
		case cur.Values != nil:
			w.buf.WriteByte('(')
			w.buf.WriteString(strings.Join(cur.Values, ", "))
			w.buf.WriteByte(')')
		default:
			w.buf.WriteString(cur.Value)
		}
		w.buf.WriteString(strings.Repeat(")", cur.CloseParen))
		if cur.LogicalOperator != "" {
			w.buf.WriteByte(' ')
			w.buf.WriteString(cur.LogicalOperator)
			w.buf.WriteByte(' ')
		}
	}
}

func (w *writer) writeDataCategory(clause *parser.WithDataCategoryClause) {
	for i, cond := range clause.Conditions {
		if i > 0 {
			w.buf.WriteString(" AND ")
		}
		w.buf.WriteString(cond.GroupName)
		w.buf.WriteByte(' ')
		w.buf.WriteString(cond.Selector)
		w.buf.WriteByte(' ')
		if len(cond.Parameters) == 1 {
			w.buf.WriteString(cond.Parameters[0])
		} else {
			w.buf.WriteByte('(')
			w.buf.WriteString(strings.Join(cond.Parameters, ", "))
			w.buf.WriteByte(')')
		}
	}
}

func (w *writer) writeGroupBy(g *parser.GroupByClause) {
	if g.Fn != nil {
		w.buf.WriteString(g.Fn.RawValue)
	}
	if len(g.Fields) > 0 {
		if g.Fn != nil {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(strings.Join(g.Fields, ", "))
	}
	if g.Having != nil {
		w.clause("HAVING ")
		w.writeConditions(g.Having)
	}
}

func (w *writer) writeOrderBy(items []parser.OrderByClause) {
	for i, item := range items {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		if item.Fn != nil {
			w.buf.WriteString(item.Fn.RawValue)
		} else {
			w.buf.WriteString(item.Field)
		}
		if item.Order != "" {
			w.buf.WriteByte(' ')
			w.buf.WriteString(item.Order)
		}
		if item.Nulls != "" {
			w.buf.WriteString(" NULLS ")
			w.buf.WriteString(item.Nulls)
		}
	}
}
