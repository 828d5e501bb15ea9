package soql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soqlkit/soql/logger"
	"github.com/soqlkit/soql/parser"
)

// TestParseQuery 测试façade的基本解析
func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("SELECT Id, Name FROM Account WHERE Name = 'Acme' LIMIT 10")
	require.NoError(t, err)

	assert.Equal(t, "Account", q.SObject)
	assert.Len(t, q.Fields, 2)
	require.NotNil(t, q.Where)
	assert.Equal(t, parser.LiteralString, q.Where.LiteralType)
	require.NotNil(t, q.Limit)
	assert.Equal(t, 10, *q.Limit)
}

// TestParseQuerySyntaxError 语法错误聚合为单个error返回
func TestParseQuerySyntaxError(t *testing.T) {
	_, err := ParseQuery("SELECT Id FROM")
	require.Error(t, err)

	var syntaxErrs *parser.SyntaxErrors
	require.True(t, errors.As(err, &syntaxErrs))
	assert.NotEmpty(t, syntaxErrs.Errors)
}

// TestIsQueryValid 校验只返回布尔值
func TestIsQueryValid(t *testing.T) {
	assert.True(t, IsQueryValid("SELECT Id FROM Account"))
	assert.False(t, IsQueryValid("SELECT Id FROM"))
	assert.False(t, IsQueryValid(""))
	assert.False(t, IsQueryValid("SELECT FROM Account"))
}

// TestValidityMatchesParse 校验结果与解析是否报错一致
func TestValidityMatchesParse(t *testing.T) {
	corpus := []string{
		"SELECT Id FROM Account",
		"SELECT Id, (SELECT Id FROM Contacts) FROM Account",
		"SELECT COUNT(Id) FROM Account GROUP BY Type HAVING COUNT(Id) > 5",
		"SELECT TYPEOF What WHEN Account THEN Phone ELSE Name END FROM Event",
		"SELECT Id FROM Account WHERE (Name = 'a' OR Name = 'b') AND Industry != 'x'",
		"SELECT Id FROM",
		"SELECT FROM Account",
		"SELECT Id FROM Account WHERE",
		"SELECT Id FROM Account WHERE Name = 'unterminated",
		"SELECT Id FROM Account garbage",
		"",
	}

	for _, query := range corpus {
		_, err := ParseQuery(query)
		assert.Equal(t, err == nil, IsQueryValid(query), "query: %q", query)
	}
}

// TestWithContinueIfErrors 开启后语法错误不再导致error
func TestWithContinueIfErrors(t *testing.T) {
	q, err := ParseQuery("SELECT Id, FROM Account", WithContinueIfErrors())
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Account", q.SObject)
}

// TestWithoutSubqueryFields 剔除投影中的子查询字段
func TestWithoutSubqueryFields(t *testing.T) {
	q, err := ParseQuery("SELECT Id, (SELECT Id FROM Contacts) FROM Account", WithoutSubqueryFields())
	require.NoError(t, err)
	require.Len(t, q.Fields, 1)
	assert.Equal(t, &parser.Field{Field: "Id"}, q.Fields[0])
}

// TestWithMaxDepth 深度上限经由选项传入
func TestWithMaxDepth(t *testing.T) {
	_, err := ParseQuery("SELECT Id FROM Account WHERE (((Name = 'a')))", WithMaxDepth(2))
	assert.Error(t, err)

	_, err = ParseQuery("SELECT Id FROM Account WHERE (((Name = 'a')))", WithMaxDepth(10))
	assert.NoError(t, err)
}

// TestWithLogging 开启日志不影响解析结果
func TestWithLogging(t *testing.T) {
	q, err := ParseQuery("SELECT Id FROM Account", WithLogging())
	require.NoError(t, err)
	assert.Equal(t, "Account", q.SObject)

	q, err = ParseQuery("SELECT Id FROM Account", WithLogLevel(logger.ERROR))
	require.NoError(t, err)
	assert.Equal(t, "Account", q.SObject)
}

// TestParseQueryConcurrent 多个解析可以并发进行
func TestParseQueryConcurrent(t *testing.T) {
	queries := []string{
		"SELECT Id FROM Account",
		"SELECT Id, Name FROM Contact WHERE Email != NULL",
		"SELECT COUNT(Id) FROM Opportunity GROUP BY StageName",
	}

	done := make(chan error, len(queries)*8)
	for i := 0; i < 8; i++ {
		for _, query := range queries {
			go func(q string) {
				_, err := ParseQuery(q)
				done <- err
			}(query)
		}
	}
	for i := 0; i < len(queries)*8; i++ {
		assert.NoError(t, <-done)
	}
}
