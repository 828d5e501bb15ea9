package composer

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soqlkit/soql/parser"
)

// mustParse 解析失败直接终止测试
func mustParse(t *testing.T, query string) *parser.Query {
	t.Helper()
	q, err := parser.NewParser(query).Parse()
	require.NoError(t, err, query)
	return q
}

// TestFormatRoundTrip 规范形态的查询经过解析再渲染应逐字还原
func TestFormatRoundTrip(t *testing.T) {
	corpus := []string{
		"SELECT Id FROM Account",
		"SELECT Id, Name FROM Account WHERE Name = 'foo'",
		"SELECT a.Id, a.Name FROM Account a",
		"SELECT a.Owner.Name FROM Account a",
		"SELECT Account.Owner.Name FROM Contact",
		"SELECT Id, (SELECT Id FROM Contacts) FROM Account",
		"SELECT COUNT(Id) FROM Account GROUP BY Type HAVING COUNT(Id) > 5",
		"SELECT COUNT(Id) total FROM Account GROUP BY Type, Industry",
		"SELECT COUNT(Id) FROM Account GROUP BY CUBE(Type, Industry)",
		"SELECT Id FROM Account WHERE (Name = 'a' OR Name = 'b') AND Industry != 'x'",
		"SELECT Id FROM Account WHERE NOT Name = 'a'",
		"SELECT Id FROM Account WHERE Id IN ('001', '002') LIMIT 10 OFFSET 5",
		"SELECT Id FROM Account WHERE Id NOT IN ('001')",
		"SELECT Id FROM Account WHERE Id IN :accountIds",
		"SELECT Id FROM Account WHERE Id IN (SELECT AccountId FROM Contact)",
		"SELECT Id FROM Account WHERE CreatedDate = LAST_N_DAYS:7 UPDATE TRACKING",
		"SELECT Id FROM Account WHERE CreatedDate IN (LAST_N_DAYS:7, TODAY)",
		"SELECT Id FROM Account WHERE Amount > USD5000",
		"SELECT Id FROM Account WHERE Closed__c = TRUE AND Deleted__c = false",
		"SELECT Id FROM a WHERE d >= 2024-03-15T10:30:00Z",
		"SELECT Id FROM Account USING SCOPE mine ORDER BY Name DESC NULLS LAST FOR VIEW",
		"SELECT TYPEOF What WHEN Account THEN Phone WHEN Opportunity THEN Amount ELSE Name END FROM Event",
		"SELECT Id FROM KnowledgeArticleVersion WITH DATA CATEGORY Geography__c AT (usa__c, uk__c) AND Product__c ABOVE electronics__c",
		"SELECT Id FROM Account WHERE Name = 'a' WITH SECURITY_ENFORCED",
		"SELECT Name, DISTANCE(Location__c, GEOLOCATION(37.775, -122.418), 'mi') FROM Warehouse__c",
		"SELECT Name FROM Warehouse__c ORDER BY DISTANCE(Location__c, GEOLOCATION(37.775, -122.418), 'km') ASC",
		"SELECT FORMAT(MIN(CloseDate)) FROM Opportunity",
		"SELECT Id FROM myns.Custom__c",
		"SELECT Id FROM Opportunity WHERE CALENDAR_YEAR(CloseDate) = 2024",
	}

	for _, query := range corpus {
		t.Run(query, func(t *testing.T) {
			q := mustParse(t, query)
			assert.Equal(t, query, Format(q))
		})
	}
}

// TestFormatSubquery 子查询渲染不带括号
func TestFormatSubquery(t *testing.T) {
	q := mustParse(t, "SELECT Id, (SELECT Id, Name FROM Contacts WHERE Email != NULL) FROM Account")
	sub := q.Fields[1].(*parser.FieldSubquery).Subquery
	assert.Equal(t, "SELECT Id, Name FROM Contacts WHERE Email != NULL", FormatSubquery(sub))
}

// TestFormatPreservesUserGrouping 括号计数在渲染时还原
func TestFormatPreservesUserGrouping(t *testing.T) {
	query := "SELECT Id FROM Account WHERE ((Name = 'a' OR Name = 'b') AND (Industry = 'x' OR Industry = 'y'))"
	q := mustParse(t, query)
	assert.Equal(t, query, Format(q))
}

// TestFormatAfterTransform 渲染手工修改过的AST
func TestFormatAfterTransform(t *testing.T) {
	q := mustParse(t, "SELECT Id FROM Account")
	limit := 25
	q.Limit = &limit
	q.OrderBy = []parser.OrderByClause{{Field: "Name", Order: "ASC"}}
	assert.Equal(t, "SELECT Id FROM Account ORDER BY Name ASC LIMIT 25", Format(q))
}

// TestFormatPretty 多行渲染与golden文件比对
func TestFormatPretty(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		name  string
		query string
	}{
		{
			"account_report",
			"SELECT Id, Name, (SELECT Id FROM Contacts) FROM Account WHERE Industry = 'Technology' AND AnnualRevenue > 1000000 WITH SECURITY_ENFORCED GROUP BY Name HAVING COUNT(Id) > 1 ORDER BY Name ASC NULLS FIRST LIMIT 100 OFFSET 20 FOR VIEW",
		},
		{
			"event_typeof",
			"SELECT Id, TYPEOF What WHEN Account THEN Phone ELSE Name END FROM Event USING SCOPE team WHERE CreatedDate = LAST_N_DAYS:7 ORDER BY CreatedDate DESC LIMIT 50",
		},
		{
			"nested_subqueries",
			"SELECT Id, (SELECT Id, CreatedDate FROM Cases WHERE Status = 'Open' LIMIT 5) FROM Account WHERE Id IN (SELECT AccountId FROM Contact WHERE Email != NULL) UPDATE VIEWSTAT",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := mustParse(t, test.query)
			g.Assert(t, test.name, []byte(FormatPretty(q)))
		})
	}
}
