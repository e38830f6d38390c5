package handlers

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isForeignKeyConstraintError reports whether the error is a MySQL/MariaDB
// foreign key failure, so a bad category reference becomes a clear 400
// instead of a generic 500.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}

// isForeignKeyReferencedError reports whether a delete failed because child
// rows still reference the record (MySQL error 1451).
func isForeignKeyReferencedError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1451
}
