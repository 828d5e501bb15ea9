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

// ast.go 文件定义了SOQL抽象语法树（AST）的结构和方法

package parser

import (
	"bytes"
	"encoding/json"
)

// LiteralType 表示比较表达式右侧字面量的分类标签
type LiteralType string

const (
	LiteralString           LiteralType = "STRING"
	LiteralInteger          LiteralType = "INTEGER"
	LiteralDecimal          LiteralType = "DECIMAL"
	LiteralCurrencyInteger  LiteralType = "INTEGER_WITH_CURRENCY_PREFIX"
	LiteralCurrencyDecimal  LiteralType = "DECIMAL_WITH_CURRENCY_PREFIX"
	LiteralBoolean          LiteralType = "BOOLEAN"
	LiteralDate             LiteralType = "DATE"
	LiteralDateTime         LiteralType = "DATETIME"
	LiteralNull             LiteralType = "NULL"
	LiteralDateLiteral      LiteralType = "DATE_LITERAL"
	LiteralDateNLiteral     LiteralType = "DATE_N_LITERAL"
	LiteralApexBindVariable LiteralType = "APEX_BIND_VARIABLE"
	LiteralSubquery         LiteralType = "SUBQUERY"
)

// FieldType 是投影字段的密封接口，变体只有
// Field、FieldRelationship、FieldFunctionExpression、FieldSubquery、FieldTypeof，
// 运行时type标签只在JSON序列化边界合成
type FieldType interface {
	isFieldType()
	// typeName 返回序列化边界使用的type判别串
	typeName() string
}

var _ = []FieldType{
	new(Field),
	new(FieldRelationship),
	new(FieldFunctionExpression),
	new(FieldSubquery),
	new(FieldTypeof),
}

// Field 是根对象上的直接字段
type Field struct {
	Field        string `json:"field"`
	ObjectPrefix string `json:"objectPrefix,omitempty"`
	Alias        string `json:"alias,omitempty"`
}

func (f *Field) isFieldType()     {}
func (f *Field) typeName() string { return "Field" }

// FieldRelationship 是带点号的关系字段路径，
// Relationships保存最后一段之前的所有段，RawValue保留原始点号文本
type FieldRelationship struct {
	Field         string   `json:"field"`
	Relationships []string `json:"relationships"`
	ObjectPrefix  string   `json:"objectPrefix,omitempty"`
	Alias         string   `json:"alias,omitempty"`
	RawValue      string   `json:"rawValue,omitempty"`
}

func (f *FieldRelationship) isFieldType()     {}
func (f *FieldRelationship) typeName() string { return "FieldRelationship" }

// FunctionParameter 是函数调用的一个位置参数，
// Value和Fn互斥，嵌套函数调用时使用Fn
type FunctionParameter struct {
	Value string
	Fn    *FieldFunctionExpression
}

// MarshalJSON 参数序列化为裸字符串或嵌套函数对象
func (p FunctionParameter) MarshalJSON() ([]byte, error) {
	if p.Fn != nil {
		return json.Marshal(p.Fn)
	}
	return json.Marshal(p.Value)
}

// FieldFunctionExpression 是投影或表达式中的函数调用，
// IsAggregateFn只在投影上下文设置
type FieldFunctionExpression struct {
	FunctionName  string              `json:"functionName"`
	Parameters    []FunctionParameter `json:"parameters,omitempty"`
	IsAggregateFn bool                `json:"isAggregateFn,omitempty"`
	Alias         string              `json:"alias,omitempty"`
	RawValue      string              `json:"rawValue,omitempty"`
}

func (f *FieldFunctionExpression) isFieldType()     {}
func (f *FieldFunctionExpression) typeName() string { return "FieldFunctionExpression" }

// FieldSubquery 是投影中的嵌套关系查询
type FieldSubquery struct {
	Subquery *Subquery `json:"subquery"`
}

func (f *FieldSubquery) isFieldType()     {}
func (f *FieldSubquery) typeName() string { return "FieldSubquery" }

// TypeofCondition 是TYPEOF投影的一个分支，
// Type为WHEN或ELSE，ELSE分支没有ObjectType
type TypeofCondition struct {
	Type       string   `json:"type"`
	ObjectType string   `json:"objectType,omitempty"`
	FieldList  []string `json:"fieldList"`
}

// FieldTypeof 是多态投影
type FieldTypeof struct {
	Field      string            `json:"field"`
	Conditions []TypeofCondition `json:"conditions"`
}

func (f *FieldTypeof) isFieldType()     {}
func (f *FieldTypeof) typeName() string { return "FieldTypeof" }

// FieldList 是投影字段序列，序列化时为每个变体合成type标签
type FieldList []FieldType

// MarshalJSON 实现序列化边界的type标签合成
func (l FieldList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		tag := []byte(`{"type":"` + f.typeName() + `"`)
		if len(b) > 2 {
			tag = append(tag, ',')
		}
		buf.Write(tag)
		buf.Write(b[1:])
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Condition 是WHERE和HAVING表达式树的一个节点，
// 节点通过Right左链连接成线性链，括号计数保留用户的分组
type Condition struct {
	// Field和Fn互斥，二者是比较的左操作数
	Field string
	Fn    *FieldFunctionExpression
	// Operator 是关系或集合运算符
	Operator string
	// Value 保留字面量原始文本，集合字面量存入Values
	Value      string
	Values     []string
	ValueQuery *Subquery
	// LiteralType 是标量标签，异构数组字面量时改用LiteralTypes
	LiteralType  LiteralType
	LiteralTypes []LiteralType
	// DateLiteralVariable 是日期参数字面量的N值，
	// 数组字面量时DateLiteralVariables按位置对应，非日期位置为nil
	DateLiteralVariable  *int
	DateLiteralVariables []*int
	// LogicalPrefix 可选的NOT前缀
	LogicalPrefix string
	// OpenParen和CloseParen是该节点处开合括号的数量
	OpenParen  int
	CloseParen int
	// LogicalOperator 是AND或OR，仅在Right非空时设置
	LogicalOperator string
	Right           *Condition
}

// WhereClause 是WHERE表达式树的根节点
type WhereClause = Condition

// HavingClause 是HAVING表达式树的根节点
type HavingClause = Condition

// conditionJSON 控制标量或序列形态的字面量标签序列化
type conditionJSON struct {
	Field               string                   `json:"field,omitempty"`
	Fn                  *FieldFunctionExpression `json:"fn,omitempty"`
	Operator            string                   `json:"operator,omitempty"`
	Value               interface{}              `json:"value,omitempty"`
	ValueQuery          *Subquery                `json:"valueQuery,omitempty"`
	LiteralType         interface{}              `json:"literalType,omitempty"`
	DateLiteralVariable interface{}              `json:"dateLiteralVariable,omitempty"`
	LogicalPrefix       string                   `json:"logicalPrefix,omitempty"`
	OpenParen           int                      `json:"openParen,omitempty"`
	CloseParen          int                      `json:"closeParen,omitempty"`
	LogicalOperator     string                   `json:"logicalOperator,omitempty"`
	Right               *Condition               `json:"right,omitempty"`
}

// MarshalJSON 数组字面量序列化为值列表和逐元素标签
func (c *Condition) MarshalJSON() ([]byte, error) {
	out := conditionJSON{
		Field:           c.Field,
		Fn:              c.Fn,
		Operator:        c.Operator,
		ValueQuery:      c.ValueQuery,
		LogicalPrefix:   c.LogicalPrefix,
		OpenParen:       c.OpenParen,
		CloseParen:      c.CloseParen,
		LogicalOperator: c.LogicalOperator,
		Right:           c.Right,
	}
	if c.Values != nil {
		out.Value = c.Values
	} else if c.Value != "" {
		out.Value = c.Value
	}
	if c.LiteralTypes != nil {
		out.LiteralType = c.LiteralTypes
	} else if c.LiteralType != "" {
		out.LiteralType = c.LiteralType
	}
	if c.DateLiteralVariables != nil {
		out.DateLiteralVariable = c.DateLiteralVariables
	} else if c.DateLiteralVariable != nil {
		out.DateLiteralVariable = *c.DateLiteralVariable
	}
	return json.Marshal(out)
}

// OpenParenTotal 返回整条链上开括号的总数
func (c *Condition) OpenParenTotal() int {
	total := 0
	for cur := c; cur != nil; cur = cur.Right {
		total += cur.OpenParen
	}
	return total
}

// CloseParenTotal 返回整条链上闭括号的总数
func (c *Condition) CloseParenTotal() int {
	total := 0
	for cur := c; cur != nil; cur = cur.Right {
		total += cur.CloseParen
	}
	return total
}

// GroupByClause 表示GROUP BY子句，Fields和Fn至少其一非空
type GroupByClause struct {
	Fields []string                 `json:"-"`
	Fn     *FieldFunctionExpression `json:"fn,omitempty"`
	Having *HavingClause            `json:"having,omitempty"`
}

// MarshalJSON 单字段分组时field序列化为标量，保持源模型的折叠形态
func (g *GroupByClause) MarshalJSON() ([]byte, error) {
	type alias GroupByClause
	out := struct {
		Field interface{} `json:"field,omitempty"`
		*alias
	}{alias: (*alias)(g)}
	switch len(g.Fields) {
	case 0:
	case 1:
		out.Field = g.Fields[0]
	default:
		out.Field = g.Fields
	}
	return json.Marshal(out)
}

// OrderByClause 表示一个排序项，Field和Fn互斥
type OrderByClause struct {
	Field string                   `json:"field,omitempty"`
	Fn    *FieldFunctionExpression `json:"fn,omitempty"`
	// Order 为ASC或DESC，未指定为空
	Order string `json:"order,omitempty"`
	// Nulls 为FIRST或LAST，未指定为空
	Nulls string `json:"nulls,omitempty"`
}

// WithDataCategoryCondition 是WITH DATA CATEGORY的一个过滤条件
type WithDataCategoryCondition struct {
	GroupName string `json:"groupName"`
	// Selector 为AT、ABOVE、BELOW或ABOVE_OR_BELOW
	Selector   string   `json:"selector"`
	Parameters []string `json:"parameters"`
}

// WithDataCategoryClause 表示WITH DATA CATEGORY子句
type WithDataCategoryClause struct {
	Conditions []WithDataCategoryCondition `json:"conditions"`
}

// QueryBase 是Query和Subquery的公共结构
type QueryBase struct {
	Fields               FieldList               `json:"fields"`
	Where                *WhereClause            `json:"where,omitempty"`
	WithSecurityEnforced bool                    `json:"withSecurityEnforced,omitempty"`
	WithDataCategory     *WithDataCategoryClause `json:"withDataCategory,omitempty"`
	GroupBy              *GroupByClause          `json:"groupBy,omitempty"`
	OrderBy              []OrderByClause         `json:"orderBy,omitempty"`
	Limit                *int                    `json:"limit,omitempty"`
	Offset               *int                    `json:"offset,omitempty"`
	// For 为VIEW或REFERENCE
	For string `json:"for,omitempty"`
	// Update 为TRACKING或VIEWSTAT
	Update string `json:"update,omitempty"`
}

// Query 是顶层查询的解析结果
type Query struct {
	QueryBase
	SObject       string   `json:"sObject"`
	SObjectAlias  string   `json:"sObjectAlias,omitempty"`
	SObjectPrefix []string `json:"sObjectPrefix,omitempty"`
	UsingScope    string   `json:"usingScope,omitempty"`
}

// Subquery 结构上与Query一致，但FROM目标是外层对象的关系名，
// 子查询不允许USING SCOPE
type Subquery struct {
	QueryBase
	RelationshipName string   `json:"relationshipName"`
	SObjectAlias     string   `json:"sObjectAlias,omitempty"`
	SObjectPrefix    []string `json:"sObjectPrefix,omitempty"`
}
