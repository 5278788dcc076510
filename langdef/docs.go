/*
Package langdef compiles textual grammar descriptions to grammar.Grammar
structures. The notation resembles BNF; its self-definition is:
*/
//  WHITESPACE_CHAR(ignore) = ( ' ' | '\n' | '\r' | '\t' );
//  IDENTIFIER(raw) = one or more of 'A'..'Z' and '_';
//  TERMINAL(raw) = ''' any-single-character ''';
//  ANY(raw) = '*';
//  FLAG(raw) = one or more of 'a'..'z';
//
//  STMT_INFO = '(' FLAG { ',' FLAG } ')';
//  STATEMENT = IDENTIFIER [ STMT_INFO ] '=' EXPR ';';
//  ROOT(root) = STATEMENT { STATEMENT };
//
//  EXPR = SEQUENCE | ONE_OF | OPTIONAL | TERMINAL | IDENTIFIER | ANY | '$WHITESPACE';
//  SEQUENCE = EXPR ' ' EXPR { ' ' EXPR };
//  ONE_OF = EXPR ' ' '|' ' ' EXPR { ' ' '|' ' ' EXPR };
//  OPTIONAL = '[' EXPR ']';
//  MANY = '{' EXPR '}';
/*
A description is a sequence of statements. Each statement declares one rule:
a name, an optional parenthesized flag list, an equals sign, an expression,
and a terminating semicolon. Rule names consist of uppercase latin letters
and underscores and are case-sensitive.

Expressions are built from:

  - 'x' matches exactly the character x. A single-quoted terminal holds
    exactly one character, so ''' matches a quote sign.
  - * matches any single character except a double quote or a backslash.
  - $WHITESPACE matches a possibly empty run of blanks, tabs, carriage
    returns, and line feeds.
  - NAME refers to another rule, declared anywhere in the description.
  - expr expr ... separated by single spaces matches each part in order.
  - expr | expr ... separated by spaced pipes tries each part in order and
    takes the first that matches.
  - [ expr ] matches expr zero or one time and never fails.
  - { expr } matches expr zero or more times and never fails.
  - ( expr ) groups, reintroducing sequences inside alternations and vice
    versa.

Matching is all-or-nothing with backtracking. Alternation is ordered choice:
once a part matches, later parts are never reconsidered, so an earlier
alternative matching a prefix of a later one shadows it.

Flags change how a rule surfaces in the output tree:

  - root marks the grammar's entry rule; exactly one statement must carry it.
  - raw makes the rule capture the literal matched text instead of child
    nodes.
  - ignore drops the rule's own node and splices its children into the
    parent's child list.

A rule without flags is visible and structural. Anonymous sub-expressions
(groups, brackets, members of a named rule's body) are always spliced into
the enclosing rule's node. A statement whose body is a bare terminal captures
raw even without the raw flag.

Rules not reachable from the root statement are never compiled, so only the
reachable part of a description needs to be well formed.
*/
package langdef
