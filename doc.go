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
Package soql parses SOQL (Salesforce Object Query Language) into a typed
abstract syntax tree.

Given a query text, ParseQuery produces a fully structured *parser.Query
suitable for programmatic inspection, transformation, and round-trip
formatting back into SOQL through the composer package.

# Core Features

• Complete SOQL surface - SELECT projections, relationship paths, aggregate
and date functions, nested subqueries, TYPEOF polymorphic projections,
WHERE/HAVING condition chains, GROUP BY with CUBE/ROLLUP, ORDER BY,
USING SCOPE, WITH SECURITY_ENFORCED, WITH DATA CATEGORY, LIMIT/OFFSET,
FOR VIEW/REFERENCE and UPDATE TRACKING/VIEWSTAT

• Literal classification - every comparison value is tagged with its
literal type: strings, integers, decimals, currency-prefixed numbers,
dates, datetimes, booleans, NULL, relative date literals such as TODAY,
parameterized date literals such as LAST_N_DAYS:7, and Apex bind variables

• Alias resolution - sObject aliases discovered in the FROM clause are
reconciled back into the projection list, so SELECT a.Id FROM Account a
yields a plain field with an object prefix rather than a relationship path

• Error reporting - lexical and syntax errors carry line, column, the
offending token, expected alternatives and typo suggestions; all errors of
one parse are collected and returned together

# Basic Usage

	query, err := soql.ParseQuery("SELECT Id, Name FROM Account WHERE Name = 'Acme' LIMIT 10")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(query.SObject)           // Account
	fmt.Println(*query.Limit)            // 10

	if !soql.IsQueryValid("SELECT Id FROM") {
	    fmt.Println("invalid query")
	}

Parsing is purely syntactic: no Salesforce schema is consulted, fields are
not type-checked, and nothing is executed. Each call owns its own state, so
queries may be parsed concurrently without synchronization.
*/
package soql
