//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaGoTopics/internal/str"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/joho/godotenv"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"text/template"
)

var (
	Config = BuildDefaultConfig()
	LDA    = BuildDefaultLDAConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// BuildDefaultConfig - the configuration you get if there is no config file and no command line flags
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.FSPath = vv.DEFAULTFSPATH
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.SQLiteDriver = vv.DEFAULTSQLITEDRIVER
	c.SQLitePath = vv.DEFAULTSQLITEPATH
	c.Store = vv.DEFAULTSTORE
	c.WorkerCount = runtime.NumCPU()
	c.PGLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}
	return &c
}

// ConfigAtLaunch - read the configuration values from JSON, the environment, and the command line (in that order)
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not find UserHomeDir; configuration files will be neither read nor written"
		FAIL2 = "Could not parse the command line: %s"
		MSG1  = "loaded environment overrides from '%s'"
	)

	cfgdir := ""
	if h, e := os.UserHomeDir(); e != nil {
		Msg.CRIT(FAIL1)
	} else {
		cfgdir = fmt.Sprintf(vv.CONFIGALTAPTH, h)
	}

	if cfgdir != "" {
		Config = LoadConfigFile(cfgdir)
		LDA = LoadLDAConfig(cfgdir)
	}

	if loaded := ApplyEnvironment(Config, vv.ENVFILE); loaded {
		Msg.PEEK(fmt.Sprintf(MSG1, vv.ENVFILE))
	}

	act, err := ParseFlags(Config, &LDA, os.Args[1:])
	if err != nil {
		Msg.MAND(fmt.Sprintf(FAIL2, err.Error()))
		Msg.ExitOrHang(1)
	}

	switch act {
	case "help":
		PrintHelp()
		os.Exit(0)
	case "version":
		fmt.Println(vv.VERSION + VersSuppl)
		os.Exit(1)
	case "versionplus":
		PrintVersion(*Config)
		PrintBuildInfo(*Config)
		os.Exit(1)
	}

	ClampConfig(Config, &LDA)
	UpdateMessageMakerWithConfig(Msg)
}

// LoadConfigFile - read vv.CONFIGBASIC from dir; if it does not exist, write the defaults there
func LoadConfigFile(dir string) *str.CurrentConfiguration {
	const (
		ERR1 = "LoadConfigFile() failed to parse '%s'; using built-in defaults instead"
		MSG1 = "wrote default configuration file "
		MSG2 = "read configuration from "
	)

	cfg := BuildDefaultConfig()
	fn := filepath.Join(dir, vv.CONFIGBASIC)

	if _, e := os.Stat(fn); e != nil {
		writedefaults(dir, fn, cfg)
		Msg.PEEK(MSG1 + fn)
		return cfg
	}

	loaded := BuildDefaultConfig()
	if err := readjson(fn, loaded); err != nil {
		Msg.CRIT(fmt.Sprintf(ERR1, fn))
		return cfg
	}
	Msg.TMI(MSG2 + fn)
	return loaded
}

// ApplyEnvironment - godotenv then os.Getenv; returns true if an env file was found
func ApplyEnvironment(cfg *str.CurrentConfiguration, envfile string) bool {
	// godotenv never overwrites a variable that the shell already set
	loaded := godotenv.Load(envfile) == nil

	if v := os.Getenv("HGT_PGHOST"); v != "" {
		cfg.PGLogin.Host = v
	}
	if v := os.Getenv("HGT_PGUSER"); v != "" {
		cfg.PGLogin.User = v
	}
	if v := os.Getenv("HGT_PGPASS"); v != "" {
		cfg.PGLogin.Pass = v
	}
	if v := os.Getenv("HGT_PGDB"); v != "" {
		cfg.PGLogin.DBName = v
	}
	if v := os.Getenv("HGT_PGPORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.PGLogin.Port = p
		}
	}
	if v := os.Getenv("HGT_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("HGT_SQLITE"); v != "" {
		cfg.SQLitePath = v
	}
	return loaded
}

// ParseFlags - walk the command line; returns "help", "version", "versionplus" or ""
func ParseFlags(cfg *str.CurrentConfiguration, lda *str.LDAConfig, args []string) (string, error) {
	const (
		FAIL1 = "'%s' requires a value"
		FAIL2 = "'%s' requires a number, not '%s'"
	)

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(FAIL1, args[i])
		}
		return args[i+1], nil
	}

	nextint := func(i int) (int, error) {
		s, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf(FAIL2, args[i], s)
		}
		return n, nil
	}

	var err error
	for i := 0; i < len(args) && err == nil; i++ {
		var n int
		var s string
		switch args[i] {
		case "-h":
			return "help", nil
		case "-v":
			return "version", nil
		case "-vv":
			return "versionplus", nil
		case "-bw":
			cfg.BlackAndWhite = true
		case "-el":
			n, err = nextint(i)
			cfg.EchoLog = n
			i++
		case "-fs":
			s, err = next(i)
			cfg.Store = "fs"
			cfg.FSPath = s
			i++
		case "-gl":
			n, err = nextint(i)
			cfg.LogLevel = n
			i++
		case "-gz":
			cfg.Gzip = true
		case "-it":
			n, err = nextint(i)
			lda.MaxIterations = n
			i++
		case "-nt":
			n, err = nextint(i)
			lda.NumTopics = n
			i++
		case "-p":
			n, err = nextint(i)
			cfg.HostPort = n
			i++
		case "-pc":
			cfg.ProfileCPU = true
		case "-pg":
			cfg.Store = "pg"
		case "-pm":
			cfg.ProfileMEM = true
		case "-q":
			cfg.QuietStart = true
		case "-s3":
			cfg.SQLiteDriver = "sqlite3"
		case "-sd":
			n, err = nextint(i)
			lda.Seed = uint64(n)
			i++
		case "-sq":
			s, err = next(i)
			cfg.Store = "sqlite"
			cfg.SQLitePath = s
			i++
		case "-tf":
			s, err = next(i)
			cfg.TrainFile = s
			i++
		case "-ti":
			s, err = next(i)
			cfg.TrainID = s
			i++
		case "-wc":
			n, err = nextint(i)
			cfg.WorkerCount = n
			i++
		default:
			// unknown flags are ignored, as ever
		}
	}
	return "", err
}

// ClampConfig - refuse silly values
func ClampConfig(cfg *str.CurrentConfiguration, lda *str.LDAConfig) {
	const (
		FAIL1 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL2 = "Refusing to model %d topics; using %d instead"
		FAIL3 = "Refusing to run %d iterations; using %d instead"
	)

	if cfg.WorkerCount > runtime.NumCPU() || cfg.WorkerCount < 1 {
		Msg.CRIT(fmt.Sprintf(FAIL1, cfg.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		cfg.WorkerCount = runtime.NumCPU()
	}

	if lda.NumTopics < 1 || lda.NumTopics > vv.LDAMAXTOPICS {
		Msg.CRIT(fmt.Sprintf(FAIL2, lda.NumTopics, vv.LDATOPICS))
		lda.NumTopics = vv.LDATOPICS
	}

	if lda.MaxIterations < 1 {
		Msg.CRIT(fmt.Sprintf(FAIL3, lda.MaxIterations, vv.LDAITER))
		lda.MaxIterations = vv.LDAITER
	}

	if lda.TermsPerTopic < 1 {
		lda.TermsPerTopic = vv.LDATOPNTERMS
	}
}

// PrintHelp - execute vv.HELPTEXTTEMPLATE
func PrintHelp() {
	const (
		FAIL1 = "PrintHelp() failed to execute help text template"
	)

	PrintVersion(*Config)
	PrintBuildInfo(*Config)

	m := map[string]interface{}{
		"conffile": vv.CONFIGBASIC,
		"ldafile":  vv.CONFIGLDA,
		"echoll":   Config.EchoLog,
		"hgtll":    Config.LogLevel,
		"port":     Config.HostPort,
		"store":    Config.Store,
		"sqlite":   Config.SQLitePath,
		"fspath":   Config.FSPath,
		"workers":  Config.WorkerCount,
		"cpus":     runtime.NumCPU(),
		"topics":   LDA.NumTopics,
		"iter":     LDA.MaxIterations,
		"seed":     LDA.Seed,
		"projurl":  vv.PROJURL,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL1)
	}
	fmt.Println(Msg.ColStyle(b.String()))
}

func readjson(fn string, into any) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(into)
}

func writedefaults(dir string, fn string, v any) {
	const (
		FAIL1 = "could not write '%s': %s"
	)
	content, err := json.MarshalIndent(v, vv.JSONINDENT, vv.JSONINDENT)
	if err == nil {
		err = os.MkdirAll(dir, vv.DIRPERMS)
	}
	if err == nil {
		err = os.WriteFile(fn, content, vv.WRITEPERMS)
	}
	if err != nil && !errors.Is(err, os.ErrExist) {
		Msg.WARN(fmt.Sprintf(FAIL1, fn, err.Error()))
	}
}
