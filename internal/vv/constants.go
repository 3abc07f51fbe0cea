//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Hipparchia Golang Topic Modeler"
	SHORTNAME = "HGT"
	VERSION   = "0.3.1"

	BLACKANDWHITE       = false
	CONFIGALTAPTH       = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC         = "hgt-conf.json"
	CONFIGLDA           = "hgt-lda-conf.json"
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTPSQLHOST     = "127.0.0.1"
	DEFAULTPSQLUSER     = "hippa_wr"
	DEFAULTPSQLPORT     = 5432
	DEFAULTPSQLDB       = "hipparchiaDB"
	DEFAULTSQLITEDRIVER = "sqlite" // "sqlite" is modernc.org/sqlite; "sqlite3" is github.com/mattn/go-sqlite3 (cgo)
	DEFAULTSQLITEPATH   = "hgt-models.db"
	DEFAULTFSPATH       = "hgt-models"
	DEFAULTSTORE        = "sqlite" // "pg", "sqlite", "fs"
	CHRTHEIGHT          = "600px"
	CHRTWIDTH           = "1024px"
	ENVFILE             = ".env"
	JOBLINGER           = 30 * time.Minute
	JOBSWEEP            = 5 * time.Minute
	JSONINDENT          = "  "
	MAXBUNDLECACHE      = 8
	MAXUPLOADBYTES      = 64 << 20
	MAXECHOREQPERSECOND = 60
	MAXQUERYLEN         = 4096
	MAXTRAINDOCS        = 2000000
	SERVEDFROMHOST      = "127.0.0.1"
	SERVEDFROMPORT      = 8010
	SIMULTANEOUSJOBS    = 2 // cap on the number of db connections at (S * Config.WorkerCount)
	TIMEOUTRD           = 15 * time.Second
	TIMEOUTWR           = 120 * time.Second
	WRITEPERMS          = 0644
	DIRPERMS            = 0755
	WSPOLLINTERVAL      = 250 * time.Millisecond
)
