//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/HipparchiaGoTopics"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-fsC0 C2{dir}C0    keep models as files inside C2{dir}C0
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.hgtll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-itC0 C2{num}C0    maximum LDA iterations [C6currentC0: C3{{.iter}}C0]
   C1-ntC0 C2{num}C0    number of LDA topics [C6currentC0: C3{{.topics}}C0]
   C1-pC0 C2{num}C0     server port [C6currentC0: C3{{.port}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pgC0          keep models in PostgreSQL; credentials come from "C3{{.conffile}}C0" or C3HGT_PG*C0 env vars
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-s3C0          use the cgo sqlite driver (mattn/go-sqlite3) instead of the pure go one
   C1-sdC0 C2{num}C0    LDA random seed [C6currentC0: C3{{.seed}}C0]
   C1-sqC0 C2{file}C0   keep models in a sqlite database [C6currentC0: C3{{.sqlite}}C0]
   C1-tfC0 C2{file}C0   train a model from C2{file}C0 (txt, jsonl, json, yaml, pdf, or a directory) before serving
   C1-tiC0 C2{name}C0   the id under which to save the C1-tfC0 model
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]

     current store: C3{{.store}}C0 [fs: C3{{.fspath}}C0]

     S1NB:S0 "C3{{.conffile}}C0" and "C3{{.ldafile}}C0" in "C3~/.configC0" configure everything for you.
         They are written with default values the first time you launch.
         Overrides can also be placed in a "C3.envC0" file: C3HGT_PGHOSTC0, C3HGT_PGPASSC0, C3HGT_STORE C0...
             C3{{.projurl}}C0
`
)
