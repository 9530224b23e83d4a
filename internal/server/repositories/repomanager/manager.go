// Package repomanager vends repository implementations bound to a DBTX and
// owns schema migrations. Services ask the manager for repositories bound
// either to the raw connection or to an in-flight transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/server/repositories/admins"
	"github.com/rmoraesb/sentinela/internal/server/repositories/imports"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systems"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systemusers"
	"github.com/rmoraesb/sentinela/internal/server/repositories/truthusers"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	TruthUsers(db dbx.DBTX) truthusers.Repository
	SystemUsers(db dbx.DBTX) systemusers.Repository
	Systems(db dbx.DBTX) systems.Repository
	Imports(db dbx.DBTX) imports.Repository
	Admins(db dbx.DBTX) admins.Repository
}
