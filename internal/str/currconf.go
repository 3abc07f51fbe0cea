//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	FSPath        string
	Gzip          bool
	HostIP        string
	HostPort      int
	LogLevel      int
	PGLogin       PostgresLogin
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	SQLiteDriver  string // "sqlite" or "sqlite3"
	SQLitePath    string
	Store         string // "pg", "sqlite", "fs"
	TrainFile     string
	TrainID       string
	WorkerCount   int
}
