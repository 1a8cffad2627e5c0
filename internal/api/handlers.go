package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dgallion1/billtracer/internal/compare"
	"github.com/dgallion1/billtracer/internal/config"
	"github.com/dgallion1/billtracer/internal/fetch"
	"github.com/dgallion1/billtracer/internal/render"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/view?preset="+fetch.PresetKeys[0], http.StatusFound)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("preset")
	preset, ok := fetch.Presets[key]
	if !ok {
		http.Error(w, "bad preset", http.StatusBadRequest)
		return
	}
	nocache := r.URL.Query().Get("nocache") == "1"

	if !nocache {
		if page, ok := s.cache.Get(key); ok {
			s.stats.RecordHit()
			writeHTML(w, page)
			return
		}
	}

	start := time.Now()
	page, err := s.buildPage(r, key, preset)
	if err != nil {
		s.log.Error("build comparison",
			"preset", key,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		http.Error(w, fmt.Sprintf("comparison failed: %v", err), http.StatusBadGateway)
		return
	}
	s.stats.RecordBuild(key, time.Since(start))
	s.cache.Put(key, page)

	s.log.Info("comparison built",
		"preset", key,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeHTML(w, page)
}

func (s *Server) buildPage(r *http.Request, key string, preset fetch.Preset) (string, error) {
	ctx := r.Context()
	oldText, err := s.fetcher.FetchVersion(ctx, preset.Congress, preset.Chamber, preset.Number, preset.V1)
	if err != nil {
		return "", err
	}
	newText, err := s.fetcher.FetchVersion(ctx, preset.Congress, preset.Chamber, preset.Number, preset.V2)
	if err != nil {
		return "", err
	}

	cs, err := compare.Compare(oldText, newText, s.cfg.CompareConfig())
	if err != nil {
		return "", err
	}

	options := make([]render.PresetOption, 0, len(fetch.PresetKeys))
	for _, k := range fetch.PresetKeys {
		options = append(options, render.PresetOption{Key: k, Label: fetch.Presets[k].Label})
	}
	meta := render.Meta{
		Label:     preset.Label,
		StageA:    fetch.StageLabel(preset.V1),
		StageB:    fetch.StageLabel(preset.V2),
		PresetKey: key,
		Version:   config.AppVersion,
		Generated: time.Now(),
		Options:   options,
	}
	return render.BuildPage(meta, cs)
}

func (s *Server) handleFlush(w http.ResponseWriter, r *http.Request) {
	n := s.cache.Flush()
	s.log.Info("cache flushed", "entries", n)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "CACHE cleared (%d entries)", n)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"version":       config.AppVersion,
		"cache_entries": s.cache.Len(),
		"stats":         s.stats.Snapshot(),
	})
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}
