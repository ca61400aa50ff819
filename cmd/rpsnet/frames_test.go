package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/timpalpant/rpsnet"
	"github.com/timpalpant/rpsnet/network"
)

func TestFrameRenderer(t *testing.T) {
	dir, err := ioutil.TempDir("", "frames")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	net, err := network.NewTorus(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	params := RenderParams{Directory: dir, Every: 2, Scale: 2, HistoryLength: 3}
	r, err := newFrameRenderer(net.NumVertices(), params)
	if err != nil {
		t.Fatal(err)
	}

	sim := rpsnet.NewSimulation(net, rpsnet.Params{Seed: 1, NumWorkers: 2})
	for i := 0; i < 4; i++ {
		sim.Step()
		if err := r.Update(sim); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Errorf("saved %d frames, expected 2: %v", len(frames), frames)
	}
}

func TestFrameRenderer_NotSquare(t *testing.T) {
	if _, err := newFrameRenderer(10, RenderParams{Directory: os.TempDir(), HistoryLength: 1}); err == nil {
		t.Error("expected error rendering non-square population")
	}
}
