package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/internal/network"
	"github.com/gravitas-games/hexboard/layout"
	"github.com/gravitas-games/hexboard/place"
	"github.com/gravitas-games/hexboard/validate"
)

// buildRequest translates a wire payload into a layout request and a
// generator configured for it. Any translation failure is a configuration
// error.
func (s *Server) buildRequest(payload *network.GeneratePayload) (layout.Request, *layout.Generator, error) {
	req, err := parseRequest(payload)
	if err != nil {
		return layout.Request{}, nil, &layout.ConfigError{Reason: err.Error()}
	}

	boardKind := payload.Board
	if boardKind == "" {
		boardKind = s.config.Generate.Board
	}

	var shape board.ShapeBuilder
	var tables board.Tables
	switch boardKind {
	case "standard":
		shape = board.StandardShape{}
		tables = board.Standard()
	case "56":
		shape = board.Shape56{UseFrame: payload.UseFrame || s.config.Generate.UseFrame}
		tables = board.FiveSix()
	default:
		return layout.Request{}, nil, &layout.ConfigError{Reason: fmt.Sprintf("unknown board %q", boardKind)}
	}

	if s.config.Tables != nil {
		tables, err = s.config.Tables.Tables(tables)
		if err != nil {
			return layout.Request{}, nil, &layout.ConfigError{Reason: err.Error()}
		}
	}

	seed := time.Now().UnixNano()
	if payload.Seed != nil {
		seed = *payload.Seed
	}

	gen, err := layout.New(shape, tables,
		layout.WithMaxAttempts(s.config.Generate.MaxAttempts),
		layout.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		return layout.Request{}, nil, err
	}
	return req, gen, nil
}

// parseRequest resolves the payload's mode strings and validator specs.
// Empty modes select the variable setup: shuffled terrain and ports with
// the standard number sequence.
func parseRequest(payload *network.GeneratePayload) (layout.Request, error) {
	req := layout.Request{
		Terrain: place.Shuffle,
		Numbers: place.Standard,
		Ports:   place.Shuffle,
	}

	var err error
	if payload.Terrain != "" {
		if req.Terrain, err = place.ParseMode(payload.Terrain); err != nil {
			return layout.Request{}, err
		}
	}
	if payload.Numbers != "" {
		if req.Numbers, err = place.ParseMode(payload.Numbers); err != nil {
			return layout.Request{}, err
		}
	}
	if payload.Ports != "" {
		if req.Ports, err = place.ParseMode(payload.Ports); err != nil {
			return layout.Request{}, err
		}
	}

	if req.Validators, err = validate.ParseAll(payload.Validators); err != nil {
		return layout.Request{}, err
	}
	return req, nil
}

// cacheable reports whether a request always produces the same board: its
// random source is pinned or every axis is deterministic.
func cacheable(payload *network.GeneratePayload, req layout.Request) bool {
	return payload.Seed != nil || req.Deterministic()
}

// fingerprint derives the cache key for a payload from its canonical JSON
// form.
func fingerprint(payload *network.GeneratePayload) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
