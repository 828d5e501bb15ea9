package parser

import "strings"

// keywords 关键字查找表，词法分析时大小写不敏感
var keywords = map[string]TokenType{
	"SELECT":            TokenSELECT,
	"FROM":              TokenFROM,
	"WHERE":             TokenWHERE,
	"WITH":              TokenWITH,
	"DATA":              TokenDATA,
	"CATEGORY":          TokenCATEGORY,
	"GROUP":             TokenGROUP,
	"BY":                TokenBY,
	"HAVING":            TokenHAVING,
	"ORDER":             TokenORDER,
	"ASC":               TokenASC,
	"DESC":              TokenDESC,
	"NULLS":             TokenNULLS,
	"FIRST":             TokenFIRST,
	"LAST":              TokenLAST,
	"LIMIT":             TokenLIMIT,
	"OFFSET":            TokenOFFSET,
	"FOR":               TokenFOR,
	"VIEW":              TokenVIEW,
	"REFERENCE":         TokenREFERENCE,
	"UPDATE":            TokenUPDATE,
	"TRACKING":          TokenTRACKING,
	"VIEWSTAT":          TokenVIEWSTAT,
	"USING":             TokenUSING,
	"SCOPE":             TokenSCOPE,
	"TYPEOF":            TokenTYPEOF,
	"WHEN":              TokenWHEN,
	"THEN":              TokenTHEN,
	"ELSE":              TokenELSE,
	"END":               TokenEND,
	"SECURITY_ENFORCED": TokenSECURITYENFORCED,
	"AT":                TokenAT,
	"ABOVE":             TokenABOVE,
	"BELOW":             TokenBELOW,
	"ABOVE_OR_BELOW":    TokenABOVEORBELOW,
	"NULL":              TokenNULL,
	"TRUE":              TokenTRUE,
	"FALSE":             TokenFALSE,
	"AND":               TokenAND,
	"OR":                TokenOR,
	"NOT":               TokenNOT,
	"LIKE":              TokenLIKE,
	"IN":                TokenIN,
	"INCLUDES":          TokenINCLUDES,
	"EXCLUDES":          TokenEXCLUDES,
	"AS":                TokenAS,
}

// aggregateFunctions 聚合函数注册表
var aggregateFunctions = map[string]struct{}{
	"COUNT":          {},
	"COUNT_DISTINCT": {},
	"SUM":            {},
	"AVG":            {},
	"MIN":            {},
	"MAX":            {},
}

// dateFunctions 日期函数注册表，用于GROUP BY和WHERE中的日期分组
var dateFunctions = map[string]struct{}{
	"CALENDAR_MONTH":   {},
	"CALENDAR_QUARTER": {},
	"CALENDAR_YEAR":    {},
	"DAY_IN_MONTH":     {},
	"DAY_IN_WEEK":      {},
	"DAY_IN_YEAR":      {},
	"DAY_ONLY":         {},
	"FISCAL_MONTH":     {},
	"FISCAL_QUARTER":   {},
	"FISCAL_YEAR":      {},
	"HOUR_IN_DAY":      {},
	"WEEK_IN_MONTH":    {},
	"WEEK_IN_YEAR":     {},
}

// groupingFunctions GROUP BY扩展函数
var groupingFunctions = map[string]struct{}{
	"CUBE":     {},
	"ROLLUP":   {},
	"GROUPING": {},
}

// formattingFunctions 格式化和转换函数
var formattingFunctions = map[string]struct{}{
	"FORMAT":           {},
	"CONVERT_CURRENCY": {},
	"TOLABEL":          {},
}

// locationFunctions 地理位置函数
var locationFunctions = map[string]struct{}{
	"DISTANCE":    {},
	"GEOLOCATION": {},
}

// dateLiterals 相对日期字面量
var dateLiterals = map[string]struct{}{
	"YESTERDAY":           {},
	"TODAY":               {},
	"TOMORROW":            {},
	"LAST_WEEK":           {},
	"THIS_WEEK":           {},
	"NEXT_WEEK":           {},
	"LAST_MONTH":          {},
	"THIS_MONTH":          {},
	"NEXT_MONTH":          {},
	"LAST_90_DAYS":        {},
	"NEXT_90_DAYS":        {},
	"THIS_QUARTER":        {},
	"LAST_QUARTER":        {},
	"NEXT_QUARTER":        {},
	"THIS_YEAR":           {},
	"LAST_YEAR":           {},
	"NEXT_YEAR":           {},
	"THIS_FISCAL_QUARTER": {},
	"LAST_FISCAL_QUARTER": {},
	"NEXT_FISCAL_QUARTER": {},
	"THIS_FISCAL_YEAR":    {},
	"LAST_FISCAL_YEAR":    {},
	"NEXT_FISCAL_YEAR":    {},
}

// dateNLiterals 带:N参数的相对日期字面量
var dateNLiterals = map[string]struct{}{
	"NEXT_N_DAYS":            {},
	"LAST_N_DAYS":            {},
	"N_DAYS_AGO":             {},
	"NEXT_N_WEEKS":           {},
	"LAST_N_WEEKS":           {},
	"N_WEEKS_AGO":            {},
	"NEXT_N_MONTHS":          {},
	"LAST_N_MONTHS":          {},
	"N_MONTHS_AGO":           {},
	"NEXT_N_QUARTERS":        {},
	"LAST_N_QUARTERS":        {},
	"N_QUARTERS_AGO":         {},
	"NEXT_N_YEARS":           {},
	"LAST_N_YEARS":           {},
	"N_YEARS_AGO":            {},
	"NEXT_N_FISCAL_QUARTERS": {},
	"LAST_N_FISCAL_QUARTERS": {},
	"N_FISCAL_QUARTERS_AGO":  {},
	"NEXT_N_FISCAL_YEARS":    {},
	"LAST_N_FISCAL_YEARS":    {},
	"N_FISCAL_YEARS_AGO":     {},
}

// scopeValues USING SCOPE允许的取值
var scopeValues = map[string]struct{}{
	"delegated":          {},
	"everything":         {},
	"mine":               {},
	"mine_and_my_groups": {},
	"my_territory":       {},
	"my_team_territory":  {},
	"team":               {},
}

// IsAggregateFunction 判断是否为聚合函数，大小写不敏感
func IsAggregateFunction(name string) bool {
	_, ok := aggregateFunctions[strings.ToUpper(name)]
	return ok
}

// IsDateFunction 判断是否为日期函数，大小写不敏感
func IsDateFunction(name string) bool {
	_, ok := dateFunctions[strings.ToUpper(name)]
	return ok
}

// IsGroupingFunction 判断是否为GROUP BY扩展函数
func IsGroupingFunction(name string) bool {
	_, ok := groupingFunctions[strings.ToUpper(name)]
	return ok
}

// IsLocationFunction 判断是否为地理位置函数
func IsLocationFunction(name string) bool {
	_, ok := locationFunctions[strings.ToUpper(name)]
	return ok
}

// IsKnownFunction 判断函数名是否在任意注册表中
func IsKnownFunction(name string) bool {
	upper := strings.ToUpper(name)
	if _, ok := aggregateFunctions[upper]; ok {
		return true
	}
	if _, ok := dateFunctions[upper]; ok {
		return true
	}
	if _, ok := groupingFunctions[upper]; ok {
		return true
	}
	if _, ok := formattingFunctions[upper]; ok {
		return true
	}
	if _, ok := locationFunctions[upper]; ok {
		return true
	}
	return false
}

// IsDateLiteral 判断是否为相对日期字面量
func IsDateLiteral(name string) bool {
	_, ok := dateLiterals[strings.ToUpper(name)]
	return ok
}

// IsDateNLiteral 判断是否为带参数的相对日期字面量
func IsDateNLiteral(name string) bool {
	_, ok := dateNLiterals[strings.ToUpper(name)]
	return ok
}

// IsScopeValue 判断是否为合法的USING SCOPE取值
func IsScopeValue(name string) bool {
	_, ok := scopeValues[strings.ToLower(name)]
	return ok
}
