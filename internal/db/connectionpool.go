//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
)

// FillDBConnectionPool - build the pgxpool that the PGStore will Acquire() from
func FillDBConnectionPool(ctx context.Context, cfg str.CurrentConfiguration) (*pgxpool.Pool, error) {
	// models are saved and loaded whole, so a handful of connections is plenty
	// max caps the resource allocation at SIMULTANEOUSJOBS trainings/loads per worker

	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		FAIL1   = "%w: could not execute ParseConfig(url) for %s@%s:%d"
		FAIL2   = "%w: could not connect to PostgreSQL: %s"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is configuration problem; see the following response from PostgreSQL:`
	)

	mn := 1
	mx := vv.SIMULTANEOUSJOBS * max(cfg.WorkerCount, 1)

	pl := cfg.PGLogin
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		// never echo the url: it carries the password
		return nil, fmt.Errorf(FAIL1, ErrStorage, pl.User, pl.Host, pl.Port)
	}

	thepool, e := pgxpool.NewWithConfig(ctx, config)
	if e == nil {
		e = thepool.Ping(ctx)
	}
	if e != nil {
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.CRIT(fmt.Sprintf(FAILRUN, ERRRUN, pl.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.CRIT(fmt.Sprintf(FAILSRV, ERRSRV))
		}
		if thepool != nil {
			thepool.Close()
		}
		return nil, fmt.Errorf(FAIL2, ErrStorage, e.Error())
	}
	return thepool, nil
}
