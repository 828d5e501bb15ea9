package parser

// TokenType 表示词法单元的类型
type TokenType int

const (
	TokenEOF TokenType = iota
	// TokenIllegal 表示无法识别的字符，词法错误已经上报到ErrorListener
	TokenIllegal
	TokenIdent
	// TokenStringIdentifier 单引号字符串字面量，Value保留引号和转义
	TokenStringIdentifier
	TokenUnsignedInteger
	TokenSignedInteger
	TokenRealNumber
	TokenCurrencyInteger
	TokenCurrencyDecimal
	TokenDate
	TokenDateTime
	// TokenDateLiteral 相对日期字面量，如 TODAY、LAST_WEEK
	TokenDateLiteral
	// TokenDateNLiteral 带参数的相对日期字面量，如 LAST_N_DAYS:7
	TokenDateNLiteral
	// TokenBindVariable Apex绑定变量，如 :accountIds，Value包含冒号
	TokenBindVariable
	TokenComma
	TokenLParen
	TokenRParen
	TokenColon
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE

	// 关键字
	TokenSELECT
	TokenFROM
	TokenWHERE
	TokenWITH
	TokenDATA
	TokenCATEGORY
	TokenGROUP
	TokenBY
	TokenHAVING
	TokenORDER
	TokenASC
	TokenDESC
	TokenNULLS
	TokenFIRST
	TokenLAST
	TokenLIMIT
	TokenOFFSET
	TokenFOR
	TokenVIEW
	TokenREFERENCE
	TokenUPDATE
	TokenTRACKING
	TokenVIEWSTAT
	TokenUSING
	TokenSCOPE
	TokenTYPEOF
	TokenWHEN
	TokenTHEN
	TokenELSE
	TokenEND
	TokenSECURITYENFORCED
	TokenAT
	TokenABOVE
	TokenBELOW
	TokenABOVEORBELOW
	TokenNULL
	TokenTRUE
	TokenFALSE
	TokenAND
	TokenOR
	TokenNOT
	TokenLIKE
	TokenIN
	TokenINCLUDES
	TokenEXCLUDES
	TokenAS
)

// tokenNames 保持和语法规范一致的稳定名称，用于调试日志中的token流跟踪；
// 字面量分类按TokenType常量进行，不依赖这些名称
var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenIllegal:          "ILLEGAL",
	TokenIdent:            "Identifier",
	TokenStringIdentifier: "StringIdentifier",
	TokenUnsignedInteger:  "UNSIGNED_INTEGER",
	TokenSignedInteger:    "SIGNED_INTEGER",
	TokenRealNumber:       "REAL_NUMBER",
	TokenCurrencyInteger:  "CURRENCY_PREFIXED_INTEGER",
	TokenCurrencyDecimal:  "CURRENCY_PREFIXED_DECIMAL",
	TokenDate:             "DATE",
	TokenDateTime:         "DATETIME",
	TokenDateLiteral:      "DATE_LITERAL",
	TokenDateNLiteral:     "DATE_N_LITERAL",
	TokenBindVariable:     "APEX_BIND_VARIABLE",
	TokenComma:            ",",
	TokenLParen:           "(",
	TokenRParen:           ")",
	TokenColon:            ":",
	TokenEQ:               "=",
	TokenNE:               "!=",
	TokenLT:               "<",
	TokenLE:               "<=",
	TokenGT:               ">",
	TokenGE:               ">=",
	TokenSELECT:           "SELECT",
	TokenFROM:             "FROM",
	TokenWHERE:            "WHERE",
	TokenWITH:             "WITH",
	TokenDATA:             "DATA",
	TokenCATEGORY:         "CATEGORY",
	TokenGROUP:            "GROUP",
	TokenBY:               "BY",
	TokenHAVING:           "HAVING",
	TokenORDER:            "ORDER",
	TokenASC:              "ASC",
	TokenDESC:             "DESC",
	TokenNULLS:            "NULLS",
	TokenFIRST:            "FIRST",
	TokenLAST:             "LAST",
	TokenLIMIT:            "LIMIT",
	TokenOFFSET:           "OFFSET",
	TokenFOR:              "FOR",
	TokenVIEW:             "VIEW",
	TokenREFERENCE:        "REFERENCE",
	TokenUPDATE:           "UPDATE",
	TokenTRACKING:         "TRACKING",
	TokenVIEWSTAT:         "VIEWSTAT",
	TokenUSING:            "USING",
	TokenSCOPE:            "SCOPE",
	TokenTYPEOF:           "TYPEOF",
	TokenWHEN:             "WHEN",
	TokenTHEN:             "THEN",
	TokenELSE:             "ELSE",
	TokenEND:              "END",
	TokenSECURITYENFORCED: "SECURITY_ENFORCED",
	TokenAT:               "AT",
	TokenABOVE:            "ABOVE",
	TokenBELOW:            "BELOW",
	TokenABOVEORBELOW:     "ABOVE_OR_BELOW",
	TokenNULL:             "NULL",
	TokenTRUE:             "TRUE",
	TokenFALSE:            "FALSE",
	TokenAND:              "AND",
	TokenOR:               "OR",
	TokenNOT:              "NOT",
	TokenLIKE:             "LIKE",
	TokenIN:               "IN",
	TokenINCLUDES:         "INCLUDES",
	TokenEXCLUDES:         "EXCLUDES",
	TokenAS:               "AS",
}

// String 返回token类型的稳定名称
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token 表示一个词法单元
type Token struct {
	Type  TokenType
	Value string
	// Pos 是token在输入中的字节偏移
	Pos    int
	Line   int
	Column int
}
