// Logs the strategy shares recorded in a trace written by rpsnet.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/rpsnet/trace"
)

func main() {
	flag.Set("logtostderr", "true")
	filename := flag.String("trace", "", "Trace file to summarize")
	every := flag.Int("every", 1, "Log every N generations")
	flag.Parse()

	glog.Infof("Loading trace from: %v", *filename)
	f, err := os.Open(*filename)
	if err != nil {
		glog.Fatal(err)
	}
	defer f.Close()

	r, err := trace.NewReader(f)
	if err != nil {
		glog.Fatal(err)
	}
	defer r.Close()

	records, err := r.ReadAll()
	if err != nil {
		glog.Fatal(err)
	}

	var totalChanged int
	for _, rec := range records {
		totalChanged += rec.NumChanged
		if *every > 0 && rec.Generation%*every == 0 {
			glog.Infof("Generation %d: shares %.3f, total score %d, %d changed",
				rec.Generation, rec.Counts.Shares(), rec.TotalScore, rec.NumChanged)
		}
	}

	if len(records) > 0 {
		last := records[len(records)-1]
		glog.Infof("%d generations, %.1f strategy changes per generation, final %v",
			len(records), float64(totalChanged)/float64(len(records)), last.Counts)
	}
}
