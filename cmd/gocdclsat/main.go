// Command gocdclsat reads a DIMACS CNF instance and reports whether it is
// satisfiable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hartwell-labs/gocdcl/internal/dimacs"
	"github.com/hartwell-labs/gocdcl/internal/sat"
)

// Exit codes follow the convention shared by minisat and glucose: the
// DIMACS suggested codes for SAT/UNSAT, plus 1 for anything else that
// prevents a definite answer (usage error, I/O error, no result within the
// configured budget).
const (
	exitSAT   = 10
	exitUNSAT = 20
	exitOther = 1
)

var (
	flagCPUProfile  = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile  = flag.Bool("memprof", false, "save pprof memory profile to memprof")
	flagGzip        = flag.Bool("gzip", false, "treat the input file as gzip-compressed")
	flagMaxConflict = flag.Int64("max-conflicts", -1, "stop and report unknown after this many conflicts (-1: no limit)")
	flagTimeout     = flag.Duration("timeout", -1, "stop and report unknown after this much wall time (-1: no limit)")
	flagPhaseSaving = flag.Bool("phase-saving", false, "replay each variable's last assigned value as its next decision's polarity")
)

type config struct {
	instanceFile string
	gzipped      bool
	cpuProfile   bool
	memProfile   bool
	options      sat.Options
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	opts := sat.DefaultOptions
	opts.MaxConflicts = *flagMaxConflict
	opts.Timeout = *flagTimeout
	opts.PhaseSaving = *flagPhaseSaving

	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
		options:      opts,
	}, nil
}

func run(cfg *config) (sat.LBool, error) {
	s := sat.NewSolver(cfg.options)

	if err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return sat.Unknown, fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status)

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		printModel(s)
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}

	return status, nil
}

func printModel(s *sat.Solver) {
	fmt.Print("v ")
	for v := 0; v < s.NumVariables(); v++ {
		if s.VarValue(sat.Variable(v)) == sat.False {
			fmt.Printf("-%d ", v+1)
		} else {
			fmt.Printf("%d ", v+1)
		}
	}
	fmt.Println("0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	status, err := run(cfg)

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	if err != nil {
		log.Println(err)
		os.Exit(exitOther)
	}

	switch status {
	case sat.True:
		os.Exit(exitSAT)
	case sat.False:
		os.Exit(exitUNSAT)
	default:
		os.Exit(exitOther)
	}
}
