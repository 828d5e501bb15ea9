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

/*
Package parser implements the SOQL lexer, recursive-descent parser and AST
builder.

The pipeline runs leaves first: the lexer tokenizes the input into a token
buffer, the parser recognizes the SOQL grammar over that buffer, and the
builder helpers interpret the recognized shapes into the typed AST of this
package - classifying literals, splitting relationship paths, reconciling
sObject aliases into projected fields and flattening logical expressions
into left-linked condition chains.

# Token Categories

Keywords are case-insensitive, identifiers preserve their original case.
Besides keywords and punctuation the lexer distinguishes quoted strings,
unsigned/signed integers, decimals, currency-prefixed numbers such as
USD5000, DATE and DATETIME images, relative date literals such as TODAY,
parameterized date literals such as LAST_N_DAYS:7, and Apex bind variables
such as :accountIds.

# Error Handling

Lexical and syntax errors accumulate in an ErrorListener. Parse returns
them joined as a single *SyntaxErrors value unless ContinueOnError is set,
in which case parsing proceeds best-effort and the collected errors remain
available through Errors. Structurally impossible shapes surface as
*SemanticShapeError; these indicate a grammar or builder defect, never a
user mistake.

# Resource Bounds

A parse owns its input string, token buffer and AST; nothing is shared
between invocations and parses may run concurrently. Nesting of subqueries
and parenthesized conditions is bounded by Config.MaxDepth.
*/
package parser
