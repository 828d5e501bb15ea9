package parser

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/soqlkit/soql/logger"
)

// DefaultMaxDepth 是子查询和条件括号嵌套的默认上限，
// 防止病态输入打穿调用栈
const DefaultMaxDepth = 50

// Config 控制解析行为
type Config struct {
	// ContinueOnError 为true时收集错误后继续尽力解析
	ContinueOnError bool
	// IncludeSubqueryAsField 为false时从投影中剔除子查询字段
	IncludeSubqueryAsField bool
	// MaxDepth 嵌套深度上限，0表示使用DefaultMaxDepth
	MaxDepth int
	// Logger 解析跟踪日志，nil时不输出
	Logger *logger.Logger
}

// DefaultConfig 返回默认解析配置
func DefaultConfig() Config {
	return Config{
		IncludeSubqueryAsField: true,
		MaxDepth:               DefaultMaxDepth,
	}
}

// Parser SOQL递归下降解析器。
// 一个Parser实例只能消费一次输入，解析和校验请分别创建实例。
type Parser struct {
	input    string
	cfg      Config
	tokens   []Token
	pos      int
	listener *ErrorListener
	log      *logger.Logger
	// aborted 在深度超限后置位，解析整体放弃
	aborted bool
	// semErr 记录构建器发现的第一个结构性错误
	semErr error
}

// NewParser 以默认配置创建解析器
func NewParser(input string) *Parser {
	return NewParserWithConfig(input, DefaultConfig())
}

// NewParserWithConfig 创建解析器
func NewParserWithConfig(input string, cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Parser{
		input:    input,
		cfg:      cfg,
		listener: NewErrorListener(),
		// nil的Logger丢弃输出，解析路径不需要判空
		log: cfg.Logger,
	}
}

// Errors 返回已收集的全部解析错误
func (p *Parser) Errors() []*ParseError {
	return p.listener.Errors()
}

// Parse 解析输入并构建Query。
// 存在语法错误且未开启ContinueOnError时返回*SyntaxErrors，
// 构建器发现结构性缺陷时返回*SemanticShapeError。
func (p *Parser) Parse() (*Query, error) {
	p.lex()
	if p.log.Enabled(logger.DEBUG) {
		types := make([]string, len(p.tokens))
		for i, tok := range p.tokens {
			types[i] = tok.Type.String()
		}
		p.log.Debug("lexed %d tokens: %s", len(p.tokens), strings.Join(types, " "))
	}

	q := p.parseSelectStatement(0)
	if q != nil && !p.aborted {
		if tok := p.cur(); tok.Type != TokenEOF {
			p.listener.Add(newUnexpectedTokenError(tok, []string{"EOF"}))
		}
	}

	if p.aborted {
		p.log.Error("parse aborted: nesting depth exceeded %d", p.cfg.MaxDepth)
	} else if p.listener.HasErrors() {
		p.log.Warn("collected %d parse errors", len(p.listener.Errors()))
	}

	if p.listener.HasErrors() && !p.cfg.ContinueOnError {
		return nil, &SyntaxErrors{Errors: p.listener.Errors()}
	}
	if q == nil {
		return nil, &SyntaxErrors{Errors: p.listener.Errors()}
	}
	if p.semErr != nil {
		p.log.Error("builder rejected query: %v", p.semErr)
		return nil, p.semErr
	}

	if !p.cfg.IncludeSubqueryAsField {
		kept := make(FieldList, 0, len(q.Fields))
		for _, f := range q.Fields {
			if _, isSub := f.(*FieldSubquery); isSub {
				continue
			}
			kept = append(kept, f)
		}
		q.Fields = kept
	}
	if err := validateProjection(q.Fields); err != nil {
		return nil, err
	}
	p.log.Info("parsed query targeting %s with %d projected fields", q.SObject, len(q.Fields))
	return q, nil
}

// Validate 只做词法和语法识别，返回输入是否合法
func (p *Parser) Validate() bool {
	p.lex()
	q := p.parseSelectStatement(0)
	if q != nil && !p.aborted {
		if tok := p.cur(); tok.Type != TokenEOF {
			p.listener.Add(newUnexpectedTokenError(tok, []string{"EOF"}))
		}
	}
	return q != nil && !p.listener.HasErrors()
}

// lex 一次性读出全部token，词法错误随token流收集
func (p *Parser) lex() {
	l := NewLexer(p.input, p.listener)
	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			// 词法错误已经上报，跳过该token
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Type == TokenEOF {
			return
		}
	}
}

func (p *Parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

// expect 消费指定类型的token，不匹配时记录错误且不消费
func (p *Parser) expect(typ TokenType, expected string) (Token, bool) {
	if p.cur().Type == typ {
		return p.advance(), true
	}
	p.listener.Add(newUnexpectedTokenError(p.cur(), []string{expected}))
	return p.cur(), false
}

// expectIdent 消费一个标识符
func (p *Parser) expectIdent(expected string) (Token, bool) {
	if p.cur().Type == TokenIdent {
		return p.advance(), true
	}
	p.listener.Add(newUnexpectedTokenError(p.cur(), []string{expected}))
	return p.cur(), false
}

// clauseBoundary 错误恢复的再同步点
var clauseBoundary = map[TokenType]struct{}{
	TokenFROM:   {},
	TokenWHERE:  {},
	TokenWITH:   {},
	TokenGROUP:  {},
	TokenORDER:  {},
	TokenLIMIT:  {},
	TokenOFFSET: {},
	TokenFOR:    {},
	TokenUPDATE: {},
	TokenComma:  {},
	TokenRParen: {},
	TokenEOF:    {},
}

// skipToClause 跳到下一个子句边界
func (p *Parser) skipToClause() {
	for {
		if _, ok := clauseBoundary[p.cur().Type]; ok {
			return
		}
		p.advance()
	}
}

// skipToConditionBoundary 跳到下一个条件边界
func (p *Parser) skipToConditionBoundary() {
	for {
		typ := p.cur().Type
		if typ == TokenAND || typ == TokenOR {
			return
		}
		if _, ok := clauseBoundary[typ]; ok {
			return
		}
		p.advance()
	}
}

// fromClause FROM子句的中间结果
type fromClause struct {
	name       string
	prefix     []string
	alias      string
	usingScope string
}

// parseSelectStatement 解析顶层查询
func (p *Parser) parseSelectStatement(depth int) *Query {
	base, from, ok := p.parseQueryBody(depth, false)
	if !ok {
		return nil
	}
	q := &Query{
		QueryBase:     base,
		SObject:       from.name,
		SObjectAlias:  from.alias,
		SObjectPrefix: from.prefix,
		UsingScope:    from.usingScope,
	}
	// FROM子句解析完成后才能归并投影中的别名前缀
	q.Fields = reconcileObjectAlias(q.Fields, from.alias)
	return q
}

// parseSubquery 解析子查询，FROM目标绑定为关系名
func (p *Parser) parseSubquery(depth int) *Subquery {
	base, from, ok := p.parseQueryBody(depth, true)
	if !ok {
		return nil
	}
	sq := &Subquery{
		QueryBase:        base,
		RelationshipName: from.name,
		SObjectAlias:     from.alias,
		SObjectPrefix:    from.prefix,
	}
	sq.Fields = reconcileObjectAlias(sq.Fields, from.alias)
	return sq
}

// parseQueryBody 解析SELECT语句的公共主体
func (p *Parser) parseQueryBody(depth int, isSub bool) (QueryBase, fromClause, bool) {
	var base QueryBase
	var from fromClause

	if p.aborted {
		return base, from, false
	}
	if depth > p.cfg.MaxDepth {
		p.listener.Add(newMaxDepthError(p.cfg.MaxDepth, p.cur()))
		p.aborted = true
		return base, from, false
	}

	if _, ok := p.expect(TokenSELECT, "SELECT"); !ok {
		return base, from, false
	}
	base.Fields = p.parseSelectClause(depth)

	if _, ok := p.expect(TokenFROM, "FROM"); !ok {
		p.skipToClause()
		if p.cur().Type != TokenFROM {
			return base, from, false
		}
		p.advance()
	}
	if tok, ok := p.expectIdent("object name"); ok {
		parts := strings.Split(tok.Value, ".")
		from.name = parts[len(parts)-1]
		if len(parts) > 1 {
			from.prefix = parts[:len(parts)-1]
		}
	}
	if p.cur().Type == TokenAS {
		p.advance()
		if tok, ok := p.expectIdent("alias"); ok {
			from.alias = tok.Value
		}
	} else if p.cur().Type == TokenIdent {
		from.alias = p.advance().Value
	}

	if p.cur().Type == TokenUSING {
		usingTok := p.advance()
		p.expect(TokenSCOPE, "SCOPE")
		if tok, ok := p.expectIdent("scope"); ok {
			if isSub {
				p.listener.Add(newSyntaxError("USING SCOPE is not allowed in a subquery", usingTok))
			} else {
				if !IsScopeValue(tok.Value) {
					p.listener.Add(newSyntaxError("invalid scope '"+tok.Value+"'", tok))
				}
				from.usingScope = tok.Value
			}
		}
	}

	if p.cur().Type == TokenWHERE {
		p.advance()
		p.log.Debug("parsing WHERE clause at position %d", p.cur().Pos)
		base.Where = p.parseConditionChain(depth)
	}

	for p.cur().Type == TokenWITH {
		p.advance()
		switch p.cur().Type {
		case TokenSECURITYENFORCED:
			p.advance()
			base.WithSecurityEnforced = true
		case TokenDATA:
			p.advance()
			p.expect(TokenCATEGORY, "CATEGORY")
			conds := p.parseDataCategoryConditions()
			if base.WithDataCategory == nil {
				base.WithDataCategory = &WithDataCategoryClause{}
			}
			base.WithDataCategory.Conditions = append(base.WithDataCategory.Conditions, conds...)
		default:
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"SECURITY_ENFORCED", "DATA"}))
			p.skipToClause()
		}
	}

	if p.cur().Type == TokenGROUP {
		p.advance()
		p.expect(TokenBY, "BY")
		base.GroupBy = p.parseGroupBy(depth)
	}

	if p.cur().Type == TokenORDER {
		p.advance()
		p.expect(TokenBY, "BY")
		base.OrderBy = p.parseOrderBy()
	}

	if p.cur().Type == TokenLIMIT {
		p.advance()
		base.Limit = p.parseBoundValue()
	}
	if p.cur().Type == TokenOFFSET {
		p.advance()
		base.Offset = p.parseBoundValue()
	}

	if p.cur().Type == TokenFOR {
		p.advance()
		switch p.cur().Type {
		case TokenVIEW:
			p.advance()
			base.For = "VIEW"
		case TokenREFERENCE:
			p.advance()
			base.For = "REFERENCE"
		default:
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"VIEW", "REFERENCE"}))
		}
	}
	if p.cur().Type == TokenUPDATE {
		p.advance()
		switch p.cur().Type {
		case TokenTRACKING:
			p.advance()
			base.Update = "TRACKING"
		case TokenVIEWSTAT:
			p.advance()
			base.Update = "VIEWSTAT"
		default:
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"TRACKING", "VIEWSTAT"}))
		}
	}

	return base, from, true
}

// parseSelectClause 解析投影列表
func (p *Parser) parseSelectClause(depth int) FieldList {
	var fields FieldList
	for {
		if f := p.parseSelectField(depth); f != nil {
			fields = append(fields, f)
		}
		if p.cur().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}
	if len(fields) == 0 {
		p.listener.Add(newSyntaxError("no fields specified in SELECT clause", p.cur()))
	}
	return fields
}

// parseSelectField 解析单个投影项
func (p *Parser) parseSelectField(depth int) FieldType {
	switch p.cur().Type {
	case TokenLParen:
		p.advance()
		if p.cur().Type != TokenSELECT {
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"SELECT"}))
			p.skipToClause()
			return nil
		}
		sq := p.parseSubquery(depth + 1)
		p.expect(TokenRParen, ")")
		if sq == nil {
			return nil
		}
		return &FieldSubquery{Subquery: sq}
	case TokenTYPEOF:
		return p.parseTypeof()
	case TokenIdent:
		if p.peekNext().Type == TokenLParen {
			fn := p.parseFunction(true)
			if fn == nil {
				return nil
			}
			fn.Alias = p.parseAlias()
			return fn
		}
		tok := p.advance()
		return newProjectedField(tok.Value, p.parseAlias())
	default:
		p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"field", "function", "subquery", "TYPEOF"}))
		p.skipToFieldBoundary()
		return nil
	}
}

// skipToFieldBoundary 投影项解析失败后跳到逗号或FROM
func (p *Parser) skipToFieldBoundary() {
	for {
		typ := p.cur().Type
		if typ == TokenComma || typ == TokenFROM || typ == TokenRParen || typ == TokenEOF {
			return
		}
		p.advance()
	}
}

// parseAlias 解析可选别名，AS关键字可省略
func (p *Parser) parseAlias() string {
	if p.cur().Type == TokenAS {
		p.advance()
		if tok, ok := p.expectIdent("alias"); ok {
			return tok.Value
		}
		return ""
	}
	if p.cur().Type == TokenIdent {
		return p.advance().Value
	}
	return ""
}

// parseTypeof 解析TYPEOF多态投影
func (p *Parser) parseTypeof() FieldType {
	p.advance() // TYPEOF
	t := &FieldTypeof{}
	if tok, ok := p.expectIdent("polymorphic field"); ok {
		t.Field = tok.Value
	}
	for p.cur().Type == TokenWHEN {
		p.advance()
		cond := TypeofCondition{Type: "WHEN"}
		if tok, ok := p.expectIdent("object type"); ok {
			cond.ObjectType = tok.Value
		}
		p.expect(TokenTHEN, "THEN")
		cond.FieldList = p.parseIdentList()
		t.Conditions = append(t.Conditions, cond)
	}
	if p.cur().Type == TokenELSE {
		p.advance()
		t.Conditions = append(t.Conditions, TypeofCondition{Type: "ELSE", FieldList: p.parseIdentList()})
	}
	p.expect(TokenEND, "END")
	if err := validateTypeof(t); err != nil {
		if p.semErr == nil {
			p.semErr = err
		}
		p.listener.Add(newSyntaxError(err.Error(), p.cur()))
	}
	return t
}

// parseIdentList 解析逗号分隔的标识符列表
func (p *Parser) parseIdentList() []string {
	var idents []string
	for {
		tok, ok := p.expectIdent("field")
		if !ok {
			break
		}
		idents = append(idents, tok.Value)
		if p.cur().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}
	return idents
}

// parseFunction 解析函数调用。
// includeMeta为true时是投影上下文，节点携带聚合标记；
// GROUP BY、ORDER BY和条件左侧按规范省略这些元信息
func (p *Parser) parseFunction(includeMeta bool) *FieldFunctionExpression {
	nameTok := p.advance()
	name := upperASCII(nameTok.Value)
	if !IsKnownFunction(nameTok.Value) {
		p.listener.Add(newUnknownFunctionError(nameTok.Value, nameTok))
	}
	p.expect(TokenLParen, "(")

	var params []FunctionParameter
	for p.cur().Type != TokenRParen && p.cur().Type != TokenEOF {
		switch {
		case p.cur().Type == TokenIdent && p.peekNext().Type == TokenLParen:
			if nested := p.parseFunction(false); nested != nil {
				params = append(params, FunctionParameter{Fn: nested})
			}
		case p.cur().Type == TokenIdent || p.cur().Type == TokenStringIdentifier ||
			p.cur().Type == TokenUnsignedInteger || p.cur().Type == TokenSignedInteger ||
			p.cur().Type == TokenRealNumber:
			params = append(params, FunctionParameter{Value: p.advance().Value})
		default:
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"function argument"}))
			p.advance()
		}
		if p.cur().Type == TokenComma {
			p.advance()
		}
	}
	p.expect(TokenRParen, ")")

	fn := &FieldFunctionExpression{
		FunctionName: name,
		Parameters:   params,
		RawValue:     functionRawValue(name, params),
	}
	if includeMeta {
		// DISTANCE在投影中按聚合处理
		fn.IsAggregateFn = IsAggregateFunction(name) || name == "DISTANCE"
	}
	return fn
}

// parseConditionChain 把条件序列折叠为左链
func (p *Parser) parseConditionChain(depth int) *Condition {
	parenDepth := 0
	head := p.parseCondition(depth, &parenDepth)
	if head == nil {
		return nil
	}
	cur := head
	for {
		var op string
		switch p.cur().Type {
		case TokenAND:
			op = "AND"
		case TokenOR:
			op = "OR"
		default:
			if parenDepth != 0 {
				p.listener.Add(newSyntaxError("unbalanced parentheses in condition expression", p.cur()))
			}
			return head
		}
		p.advance()
		nxt := p.parseCondition(depth, &parenDepth)
		if nxt == nil {
			return head
		}
		cur.LogicalOperator = op
		cur.Right = nxt
		cur = nxt
	}
}

// parseCondition 解析单个条件，括号计数记录在节点上
func (p *Parser) parseCondition(depth int, parenDepth *int) *Condition {
	c := &Condition{}

	if p.cur().Type == TokenNOT {
		p.advance()
		c.LogicalPrefix = "NOT"
	}
	for p.cur().Type == TokenLParen {
		if *parenDepth >= p.cfg.MaxDepth {
			p.listener.Add(newMaxDepthError(p.cfg.MaxDepth, p.cur()))
			p.aborted = true
			return nil
		}
		p.advance()
		c.OpenParen++
		*parenDepth++
	}
	// NOT也可以出现在括号内侧
	if c.LogicalPrefix == "" && p.cur().Type == TokenNOT {
		p.advance()
		c.LogicalPrefix = "NOT"
	}

	switch {
	case p.cur().Type == TokenIdent && p.peekNext().Type == TokenLParen:
		c.Fn = p.parseFunction(false)
	case p.cur().Type == TokenIdent:
		c.Field = p.advance().Value
	default:
		p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"field", "function"}))
		p.skipToConditionBoundary()
		return nil
	}

	opTok := p.cur()
	switch opTok.Type {
	case TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE:
		c.Operator = opTok.Value
		p.advance()
	case TokenLIKE:
		c.Operator = "LIKE"
		p.advance()
	case TokenIN:
		c.Operator = "IN"
		p.advance()
	case TokenNOT:
		// NOT IN 在词法上是两个token
		p.advance()
		if _, ok := p.expect(TokenIN, "IN"); ok {
			c.Operator = "NOT IN"
		}
	case TokenINCLUDES:
		c.Operator = "INCLUDES"
		p.advance()
	case TokenEXCLUDES:
		c.Operator = "EXCLUDES"
		p.advance()
	default:
		p.listener.Add(newUnexpectedTokenError(opTok,
			[]string{"=", "!=", "<", "<=", ">", ">=", "LIKE", "IN", "NOT IN", "INCLUDES", "EXCLUDES"}))
		p.skipToConditionBoundary()
		return c
	}

	switch c.Operator {
	case "IN", "NOT IN", "INCLUDES", "EXCLUDES":
		p.parseSetValue(c, depth)
	default:
		tok := p.advance()
		if _, _, ok := classifyLiteral(tok); !ok {
			p.listener.Add(newUnexpectedTokenError(tok, []string{"literal value"}))
		} else {
			applyLiteral(c, tok)
		}
	}

	for p.cur().Type == TokenRParen && *parenDepth > 0 {
		p.advance()
		c.CloseParen++
		*parenDepth--
	}
	return c
}

// parseSetValue 解析集合运算符的右值：绑定变量、子查询或字面量列表
func (p *Parser) parseSetValue(c *Condition, depth int) {
	if p.cur().Type == TokenBindVariable {
		applyLiteral(c, p.advance())
		return
	}
	if _, ok := p.expect(TokenLParen, "("); !ok {
		return
	}
	if p.cur().Type == TokenSELECT {
		c.ValueQuery = p.parseSubquery(depth + 1)
		c.LiteralType = LiteralSubquery
		p.expect(TokenRParen, ")")
		return
	}
	var elems []Token
	for p.cur().Type != TokenRParen && p.cur().Type != TokenEOF {
		tok := p.advance()
		if _, _, ok := classifyLiteral(tok); !ok {
			p.listener.Add(newUnexpectedTokenError(tok, []string{"literal value"}))
			continue
		}
		elems = append(elems, tok)
		if p.cur().Type == TokenComma {
			p.advance()
		}
	}
	if len(elems) == 0 {
		p.listener.Add(newSyntaxError("empty value list", p.cur()))
	}
	applyArrayLiteral(c, elems)
	p.expect(TokenRParen, ")")
}

// parseGroupBy 解析GROUP BY子句，含可选HAVING
func (p *Parser) parseGroupBy(depth int) *GroupByClause {
	g := &GroupByClause{}
	for {
		if p.cur().Type == TokenIdent && p.peekNext().Type == TokenLParen {
			if fn := p.parseFunction(false); fn != nil && g.Fn == nil {
				g.Fn = fn
			}
		} else if p.cur().Type == TokenIdent {
			g.Fields = append(g.Fields, p.advance().Value)
		} else {
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"field", "CUBE", "ROLLUP"}))
			p.skipToClause()
			break
		}
		if p.cur().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Type == TokenHAVING {
		p.advance()
		g.Having = p.parseConditionChain(depth)
	}
	return g
}

// parseOrderBy 解析ORDER BY子句，结果恒为序列
func (p *Parser) parseOrderBy() []OrderByClause {
	var items []OrderByClause
	for {
		item := OrderByClause{}
		if p.cur().Type == TokenIdent && p.peekNext().Type == TokenLParen {
			item.Fn = p.parseFunction(false)
		} else if p.cur().Type == TokenIdent {
			item.Field = p.advance().Value
		} else {
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"field", "function"}))
			p.skipToClause()
			break
		}
		if p.cur().Type == TokenASC {
			p.advance()
			item.Order = "ASC"
		} else if p.cur().Type == TokenDESC {
			p.advance()
			item.Order = "DESC"
		}
		if p.cur().Type == TokenNULLS {
			p.advance()
			switch p.cur().Type {
			case TokenFIRST:
				p.advance()
				item.Nulls = "FIRST"
			case TokenLAST:
				p.advance()
				item.Nulls = "LAST"
			default:
				p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"FIRST", "LAST"}))
			}
		}
		items = append(items, item)
		if p.cur().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}
	return items
}

// parseBoundValue 解析LIMIT和OFFSET的非负整数
func (p *Parser) parseBoundValue() *int {
	tok := p.cur()
	if tok.Type != TokenUnsignedInteger {
		p.listener.Add(newUnexpectedTokenError(tok, []string{"unsigned integer"}))
		return nil
	}
	p.advance()
	n, err := cast.ToIntE(tok.Value)
	if err != nil {
		p.listener.Add(newSyntaxError("invalid integer '"+tok.Value+"'", tok))
		return nil
	}
	return &n
}

// parseDataCategoryConditions 解析WITH DATA CATEGORY的过滤条件，
// 同一子句内AND连接的条件展平进一个列表
func (p *Parser) parseDataCategoryConditions() []WithDataCategoryCondition {
	var conds []WithDataCategoryCondition
	for {
		cond := WithDataCategoryCondition{}
		if tok, ok := p.expectIdent("category group"); ok {
			cond.GroupName = tok.Value
		}
		switch p.cur().Type {
		case TokenAT:
			p.advance()
			cond.Selector = "AT"
		case TokenABOVE:
			p.advance()
			cond.Selector = "ABOVE"
		case TokenBELOW:
			p.advance()
			cond.Selector = "BELOW"
		case TokenABOVEORBELOW:
			p.advance()
			cond.Selector = "ABOVE_OR_BELOW"
		default:
			p.listener.Add(newUnexpectedTokenError(p.cur(), []string{"AT", "ABOVE", "BELOW", "ABOVE_OR_BELOW"}))
		}
		if p.cur().Type == TokenLParen {
			p.advance()
			for p.cur().Type != TokenRParen && p.cur().Type != TokenEOF {
				if tok, ok := p.expectIdent("category"); ok {
					cond.Parameters = append(cond.Parameters, tok.Value)
				} else {
					p.advance()
				}
				if p.cur().Type == TokenComma {
					p.advance()
				}
			}
			p.expect(TokenRParen, ")")
		} else if tok, ok := p.expectIdent("category"); ok {
			cond.Parameters = append(cond.Parameters, tok.Value)
		}
		conds = append(conds, cond)
		if p.cur().Type == TokenAND {
			p.advance()
			continue
		}
		break
	}
	return conds
}
