package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pqError(err error) (*pq.Error, bool) {
	var perr *pq.Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

func isUniqueViolation(err error) bool {
	perr, ok := pqError(err)
	return ok && string(perr.Code) == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	perr, ok := pqError(err)
	return ok && string(perr.Code) == codeForeignKeyViolation
}

// likeEscaper escapes LIKE metacharacters so user input matches literally.
// Postgres uses backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
