package parser

import (
	"strings"

	"github.com/spf13/cast"
)

// builder.go 集中了语法树构建的语义解释：
// 点号路径拆分、sObject别名归并、字面量分类和函数原始值重建

// newProjectedField 把投影中的裸标识符规范化为Field或FieldRelationship
func newProjectedField(raw, alias string) FieldType {
	if !strings.Contains(raw, ".") {
		return &Field{Field: raw, Alias: alias}
	}
	parts := strings.Split(raw, ".")
	return &FieldRelationship{
		Field:         parts[len(parts)-1],
		Relationships: parts[:len(parts)-1],
		Alias:         alias,
		RawValue:      raw,
	}
}

// reconcileObjectAlias 是FROM子句解析完成后的归并遍历：
// 投影字段的首个关系段等于sObject别名时移入ObjectPrefix，
// 剩余关系段为空的节点改写为Field
func reconcileObjectAlias(fields FieldList, alias string) FieldList {
	if alias == "" {
		return fields
	}
	for i, f := range fields {
		fr, ok := f.(*FieldRelationship)
		if !ok || len(fr.Relationships) == 0 {
			continue
		}
		if !strings.EqualFold(fr.Relationships[0], alias) {
			continue
		}
		rest := fr.Relationships[1:]
		if len(rest) == 0 {
			fields[i] = &Field{
				Field:        fr.Field,
				ObjectPrefix: fr.Relationships[0],
				Alias:        fr.Alias,
			}
			continue
		}
		fr.ObjectPrefix = fr.Relationships[0]
		fr.Relationships = rest
	}
	return fields
}

// classifyLiteral 按匹配的token类型给字面量打标签，
// 返回false表示token不是合法的字面量
func classifyLiteral(tok Token) (LiteralType, *int, bool) {
	switch tok.Type {
	case TokenStringIdentifier:
		return LiteralString, nil, true
	case TokenUnsignedInteger, TokenSignedInteger:
		return LiteralInteger, nil, true
	case TokenRealNumber:
		return LiteralDecimal, nil, true
	case TokenCurrencyInteger:
		return LiteralCurrencyInteger, nil, true
	case TokenCurrencyDecimal:
		return LiteralCurrencyDecimal, nil, true
	case TokenTRUE, TokenFALSE:
		return LiteralBoolean, nil, true
	case TokenDate:
		return LiteralDate, nil, true
	case TokenDateTime:
		return LiteralDateTime, nil, true
	case TokenNULL:
		return LiteralNull, nil, true
	case TokenDateLiteral:
		return LiteralDateLiteral, nil, true
	case TokenDateNLiteral:
		return LiteralDateNLiteral, dateNVariable(tok.Value), true
	case TokenBindVariable:
		return LiteralApexBindVariable, nil, true
	default:
		return "", nil, false
	}
}

// dateNVariable 提取日期参数字面量NAME:N中的N
func dateNVariable(value string) *int {
	idx := strings.LastIndexByte(value, ':')
	if idx < 0 {
		return nil
	}
	n, err := cast.ToIntE(value[idx+1:])
	if err != nil {
		return nil
	}
	return &n
}

// applyLiteral 给条件节点附加单个字面量的原始文本和分类
func applyLiteral(c *Condition, tok Token) {
	typ, variable, _ := classifyLiteral(tok)
	c.Value = tok.Value
	c.LiteralType = typ
	c.DateLiteralVariable = variable
}

// applyArrayLiteral 逐元素分类集合字面量，
// 标签全部一致时折叠为标量标签，否则保留逐元素序列；
// 只要出现日期参数字面量就附加按位置对齐的变量序列
func applyArrayLiteral(c *Condition, elems []Token) {
	values := make([]string, len(elems))
	types := make([]LiteralType, len(elems))
	variables := make([]*int, len(elems))
	hasVariable := false
	uniform := true
	for i, tok := range elems {
		typ, variable, _ := classifyLiteral(tok)
		values[i] = tok.Value
		types[i] = typ
		variables[i] = variable
		if variable != nil {
			hasVariable = true
		}
		if typ != types[0] {
			uniform = false
		}
	}
	c.Values = values
	if uniform && len(types) > 0 {
		c.LiteralType = types[0]
	} else {
		c.LiteralTypes = types
	}
	if hasVariable {
		c.DateLiteralVariables = variables
	}
}

// functionRawValue 重建函数调用的原始文本，嵌套函数使用其自身的RawValue
func functionRawValue(name string, params []FunctionParameter) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Fn != nil {
			sb.WriteString(p.Fn.RawValue)
		} else {
			sb.WriteString(p.Value)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// validateProjection 后处理结束后投影不能为空
func validateProjection(fields FieldList) error {
	if len(fields) == 0 {
		return &SemanticShapeError{Message: "projection list is empty after post-processing"}
	}
	return nil
}

// validateTypeof TYPEOF至少要有一个WHEN分支，ELSE只能出现一次且在最后
func validateTypeof(t *FieldTypeof) error {
	whens := 0
	for i, cond := range t.Conditions {
		switch cond.Type {
		case "WHEN":
			whens++
		case "ELSE":
			if i != len(t.Conditions)-1 {
				return &SemanticShapeError{Message: "TYPEOF ELSE branch must be last"}
			}
		}
	}
	if whens == 0 {
		return &SemanticShapeError{Message: "TYPEOF requires at least one WHEN branch"}
	}
	return nil
}
