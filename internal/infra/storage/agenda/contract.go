package agenda

import "github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
