//go:build native_sqlite
// +build native_sqlite

package samples

import (
	_ "modernc.org/sqlite"
)

const SQLiteDriverName = "sqlite"
