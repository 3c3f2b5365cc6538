package postgres

import "strings"

// MigrateDSN rewrites a postgres:// DSN to the pgx5:// scheme expected by the migrate pgx driver.
func MigrateDSN(dsn string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}
