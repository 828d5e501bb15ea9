package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFieldListMarshalTypeTags 序列化边界为每个投影变体合成type标签
func TestFieldListMarshalTypeTags(t *testing.T) {
	q, err := NewParser("SELECT Id, Account.Name, COUNT(Id), (SELECT Id FROM Contacts) FROM Contact").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	s := string(b)

	assert.Contains(t, s, `{"type":"Field","field":"Id"}`)
	assert.Contains(t, s, `"type":"FieldRelationship"`)
	assert.Contains(t, s, `"rawValue":"Account.Name"`)
	assert.Contains(t, s, `"type":"FieldFunctionExpression"`)
	assert.Contains(t, s, `"isAggregateFn":true`)
	assert.Contains(t, s, `"type":"FieldSubquery"`)
	assert.Contains(t, s, `"relationshipName":"Contacts"`)
	assert.Contains(t, s, `"sObject":"Contact"`)
}

// TestFieldTypeofMarshal TYPEOF分支的序列化
func TestFieldTypeofMarshal(t *testing.T) {
	q, err := NewParser("SELECT TYPEOF What WHEN Account THEN Phone ELSE Name END FROM Event").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q.Fields)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"type":"FieldTypeof"`)
	assert.Contains(t, s, `{"type":"WHEN","objectType":"Account","fieldList":["Phone"]}`)
	assert.Contains(t, s, `{"type":"ELSE","fieldList":["Name"]}`)
}

// TestConditionMarshalScalar 标量字面量的条件序列化
func TestConditionMarshalScalar(t *testing.T) {
	q, err := NewParser("SELECT Id FROM Account WHERE Name = 'foo'").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q.Where)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"Name","operator":"=","value":"'foo'","literalType":"STRING"}`, string(b))
}

// TestConditionMarshalArray 数组字面量序列化为值列表
func TestConditionMarshalArray(t *testing.T) {
	q, err := NewParser("SELECT Id FROM Account WHERE Id IN ('a', 'b')").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q.Where)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"Id","operator":"IN","value":["'a'","'b'"],"literalType":"STRING"}`, string(b))
}

// TestConditionMarshalDateN 日期参数字面量携带变量
func TestConditionMarshalDateN(t *testing.T) {
	q, err := NewParser("SELECT Id FROM Account WHERE CreatedDate = LAST_N_DAYS:7").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q.Where)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"CreatedDate","operator":"=","value":"LAST_N_DAYS:7","literalType":"DATE_N_LITERAL","dateLiteralVariable":7}`, string(b))
}

// TestConditionMarshalChain 左链和括号计数的序列化
func TestConditionMarshalChain(t *testing.T) {
	q, err := NewParser("SELECT Id FROM Account WHERE (Name = 'a' OR Name = 'b')").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q.Where)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"openParen":1`)
	assert.Contains(t, s, `"closeParen":1`)
	assert.Contains(t, s, `"logicalOperator":"OR"`)
	assert.Contains(t, s, `"right":`)
}

// TestGroupByMarshalCollapse 单字段分组序列化为标量field
func TestGroupByMarshalCollapse(t *testing.T) {
	q, err := NewParser("SELECT COUNT(Id) FROM Account GROUP BY Type").Parse()
	require.NoError(t, err)
	b, err := json.Marshal(q.GroupBy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"Type"}`, string(b))

	q, err = NewParser("SELECT COUNT(Id) FROM Account GROUP BY Type, Industry").Parse()
	require.NoError(t, err)
	b, err = json.Marshal(q.GroupBy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":["Type","Industry"]}`, string(b))
}

// TestFunctionParameterMarshal 参数序列化为裸字符串或嵌套对象
func TestFunctionParameterMarshal(t *testing.T) {
	b, err := json.Marshal(FunctionParameter{Value: "Id"})
	require.NoError(t, err)
	assert.Equal(t, `"Id"`, string(b))

	b, err = json.Marshal(FunctionParameter{Fn: &FieldFunctionExpression{FunctionName: "MIN", RawValue: "MIN(CloseDate)"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"functionName":"MIN","rawValue":"MIN(CloseDate)"}`, string(b))
}

// TestQueryMarshalOptionalClauses 可选子句按需出现
func TestQueryMarshalOptionalClauses(t *testing.T) {
	q, err := NewParser("SELECT Id FROM Account USING SCOPE team LIMIT 10 FOR VIEW").Parse()
	require.NoError(t, err)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"usingScope":"team"`)
	assert.Contains(t, s, `"limit":10`)
	assert.Contains(t, s, `"for":"VIEW"`)
	assert.NotContains(t, s, `"offset"`)
	assert.NotContains(t, s, `"where"`)
}

// TestParenTotalsOverCorpus 全部条件链开合括号平衡
func TestParenTotalsOverCorpus(t *testing.T) {
	corpus := []string{
		"SELECT Id FROM Account WHERE Name = 'a'",
		"SELECT Id FROM Account WHERE (Name = 'a')",
		"SELECT Id FROM Account WHERE ((Name = 'a' OR Name = 'b') AND Industry = 'x')",
		"SELECT Id FROM Account WHERE (Name = 'a' AND (Industry = 'x' OR Industry = 'y'))",
		"SELECT COUNT(Id) FROM Account GROUP BY Type HAVING (COUNT(Id) > 5 AND COUNT(Id) < 100)",
	}
	for _, query := range corpus {
		q, err := NewParser(query).Parse()
		require.NoError(t, err, query)
		if q.Where != nil {
			assert.Equal(t, q.Where.OpenParenTotal(), q.Where.CloseParenTotal(), query)
		}
		if q.GroupBy != nil && q.GroupBy.Having != nil {
			assert.Equal(t, q.GroupBy.Having.OpenParenTotal(), q.GroupBy.Having.CloseParenTotal(), query)
		}
	}
}
