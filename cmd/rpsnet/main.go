// Simulates evolutionary Rock-Paper-Scissors on a graph, optionally saving
// rendered frames and a per-generation trace.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/rpsnet"
	"github.com/timpalpant/rpsnet/history"
	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/trace"
)

type RunParams struct {
	NumVertices    int
	Topology       string
	TopologyFile   string
	NumGenerations int
	Seed           int64
	NumWorkers     int
	LogEvery       int
	PprofAddr      string
	ScoreParams    ScoreParams
	RenderParams   RenderParams
	TraceFile      string
}

type ScoreParams struct {
	Baseline   int64
	ResetEvery int
}

type RenderParams struct {
	Directory     string
	Every         int
	Scale         int
	HistoryLength int
}

func main() {
	flag.Set("logtostderr", "true")

	var params RunParams
	flag.IntVar(&params.NumVertices, "vertices", 64*64, "Number of agents")
	flag.StringVar(&params.Topology, "topology", "ring",
		"Topology to build: ring or torus (torus requires a square number of vertices)")
	flag.StringVar(&params.TopologyFile, "topology.file", "",
		"YAML topology file (overrides -vertices and -topology)")
	flag.IntVar(&params.NumGenerations, "generations", 1000, "Number of generations to simulate")
	flag.Int64Var(&params.Seed, "seed", 1234, "Random seed")
	flag.IntVar(&params.NumWorkers, "workers", 0, "Number of update workers (0 = all CPUs)")
	flag.IntVar(&params.LogEvery, "log_every", 100, "Log population shares every N generations")
	flag.StringVar(&params.PprofAddr, "pprof.addr", "localhost:4123",
		"Address to serve pprof and expvar on (empty to disable)")
	flag.Int64Var(&params.ScoreParams.Baseline, "score.baseline", 10, "Initial score of every agent")
	flag.IntVar(&params.ScoreParams.ResetEvery, "score.reset_every", 0,
		"Reset scores to the baseline every N generations (0 = never)")
	flag.StringVar(&params.RenderParams.Directory, "render.dir", "",
		"Directory to save PNG frames in (empty to disable)")
	flag.IntVar(&params.RenderParams.Every, "render.every", 1, "Save a frame every N generations")
	flag.IntVar(&params.RenderParams.Scale, "render.scale", 8, "Pixels per vertex along each axis")
	flag.IntVar(&params.RenderParams.HistoryLength, "render.history", history.DefaultLength,
		"Number of trailing generations blended into each pixel")
	flag.StringVar(&params.TraceFile, "trace.file", "", "File to write the generation trace to")
	flag.Parse()

	if params.PprofAddr != "" {
		go http.ListenAndServe(params.PprofAddr, nil)
	}

	net := mustBuildNetwork(params)
	sim := rpsnet.NewSimulation(net, rpsnet.Params{
		Seed:          params.Seed,
		NumWorkers:    params.NumWorkers,
		ScoreBaseline: params.ScoreParams.Baseline,
	})

	var renderer *frameRenderer
	if params.RenderParams.Directory != "" {
		var err error
		renderer, err = newFrameRenderer(net.NumVertices(), params.RenderParams)
		if err != nil {
			glog.Fatal(err)
		}
	}

	var tw *trace.Writer
	if params.TraceFile != "" {
		f, err := os.Create(params.TraceFile)
		if err != nil {
			glog.Fatal(err)
		}
		defer f.Close()

		tw = trace.NewWriter(f)
		defer func() {
			if err := tw.Close(); err != nil {
				glog.Errorf("Error closing trace: %v", err)
			}
		}()
	}

	glog.Infof("Simulating %d generations on %v", params.NumGenerations, net)
	start := time.Now()
	for i := 0; i < params.NumGenerations; i++ {
		if params.ScoreParams.ResetEvery > 0 && i > 0 && i%params.ScoreParams.ResetEvery == 0 {
			glog.V(1).Infof("Resetting scores to %d", params.ScoreParams.Baseline)
			sim.Population().ResetScores(params.ScoreParams.Baseline)
		}

		nChanged := sim.Step()
		pop := sim.Population()
		if tw != nil {
			err := tw.Write(trace.Record{
				Generation: sim.Generation(),
				Counts:     pop.Counts(),
				TotalScore: pop.TotalScore(),
				NumChanged: nChanged,
			})
			if err != nil {
				glog.Fatal(err)
			}
		}

		if renderer != nil {
			if err := renderer.Update(sim); err != nil {
				glog.Fatal(err)
			}
		}

		if params.LogEvery > 0 && sim.Generation()%params.LogEvery == 0 {
			gps := float64(sim.Generation()) / time.Since(start).Seconds()
			glog.Infof("Generation %d: %v, %d changed (%.1f generations/sec)",
				sim.Generation(), pop.Counts(), nChanged, gps)
		}
	}

	glog.Infof("Finished %d generations in %v: %v",
		sim.Generation(), time.Since(start), sim.Population().Counts())
}

func mustBuildNetwork(params RunParams) *network.Network {
	if params.TopologyFile != "" {
		glog.Infof("Loading topology from: %v", params.TopologyFile)
		f, err := os.Open(params.TopologyFile)
		if err != nil {
			glog.Fatal(err)
		}
		defer f.Close()

		net, err := network.LoadTopology(f)
		if err != nil {
			glog.Fatal(err)
		}
		return net
	}

	net, err := network.Build(params.Topology, network.Params{NumVertices: params.NumVertices})
	if err != nil {
		glog.Fatal(err)
	}
	return net
}
