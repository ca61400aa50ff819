package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet"
	"github.com/timpalpant/rpsnet/history"
	"github.com/timpalpant/rpsnet/render"
)

// frameRenderer smooths each vertex's strategy over a trailing window
// and paints the population onto a square raster.
type frameRenderer struct {
	params RenderParams
	side   int
	window *history.Window
	colors []uint32
}

func newFrameRenderer(numVertices int, params RenderParams) (*frameRenderer, error) {
	side := 0
	for side*side < numVertices {
		side++
	}
	if side*side != numVertices {
		return nil, errors.Errorf("cannot render %d vertices: not a square number", numVertices)
	}

	if err := os.MkdirAll(params.Directory, 0755); err != nil {
		return nil, err
	}

	window, err := history.New(numVertices, params.HistoryLength)
	if err != nil {
		return nil, err
	}

	return &frameRenderer{
		params: params,
		side:   side,
		window: window,
	}, nil
}

func (r *frameRenderer) Update(sim *rpsnet.Simulation) error {
	r.window.Record(sim.Population().Strategies())
	if r.params.Every > 1 && sim.Generation()%r.params.Every != 0 {
		return nil
	}

	r.colors = r.window.Colors(r.colors)
	img, err := render.Frame(r.side, r.side, r.colors, r.params.Scale)
	if err != nil {
		return err
	}

	filename, err := render.SaveFrame(r.params.Directory, sim.Generation(), img)
	if err != nil {
		return errors.Wrapf(err, "saving frame for generation %d", sim.Generation())
	}

	glog.V(1).Infof("Saved %v", filename)
	return nil
}
