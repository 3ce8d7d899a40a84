// Package psqlbuilder configures squirrel builders with postgres placeholders.
package psqlbuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// likeEscaper escapes LIKE wildcards; backslash is the default ESCAPE character in postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

// ContainsPattern builds a LIKE/ILIKE pattern matching q as a literal substring.
func ContainsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(q)) + "%"
}
