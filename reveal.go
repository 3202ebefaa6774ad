/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// The reveal endpoints are thin wrappers around the pairing engine. Each
// request recomputes the table from the seed it carries; nothing is shared
// between participants except that seed.
//
// Routes:
//   - GET $prefix/reveal?name=&seed=  → JSON assignment for one participant
//   - GET $prefix/reveal/ws           → same, behind a dice roll streamed over a websocket
//   - GET $prefix/table?seed=         → JSON list of every group (instructor view)
//   - GET $prefix/seed                → JSON fresh seed
//   - GET $prefix/qr?seed=            → PNG QR code linking to the home page with the seed filled in

package main

import (
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Seednode/compliments/pairing"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	rollInterval = 80 * time.Millisecond
	wsIdle       = 10 * time.Minute
	qrSize       = 320
)

var diceFaces = []string{"🎲", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Messages coming from websocket clients
type revealRequest struct {
	Name string `json:"name"`
	Seed string `json:"seed"`
}

// RollMessage is one animation frame; it carries no assignment data.
type RollMessage struct {
	Type string `json:"type"` // "roll"
	Face string `json:"face"`
}

// RevealMessage ends a roll with the participant's assignment.
type RevealMessage struct {
	Type string `json:"type"` // "reveal"
	pairing.Reveal
}

type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

type SeedResponse struct {
	Seed string `json:"seed"`
}

type TableResponse struct {
	Seed         string                 `json:"seed"`
	Synchronized bool                   `json:"synchronized"`
	Groups       [][]pairing.Assignment `json:"groups"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func serveReveal(cfg *Config, e *pairing.Engine, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		q := r.URL.Query()

		res, err := e.Reveal(q.Get("name"), q.Get("seed"))
		if err != nil {
			if _, err := writeError(cfg, w, err); err != nil {
				errs <- err
			}

			return
		}

		written, err := writeJSON(cfg, w, http.StatusOK, res)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "REVEAL: %q with seed %q (%s) to %s in %s",
			res.Name,
			res.Seed,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveTable(cfg *Config, e *pairing.Engine, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		res := TableResponse{
			Seed:         strings.TrimSpace(r.URL.Query().Get("seed")),
			Synchronized: true,
		}
		if res.Seed == "" {
			res.Seed = pairing.FallbackSeed
			res.Synchronized = false
		}

		table := e.Assignments(res.Seed)
		for _, group := range e.Groups(res.Seed) {
			members := make([]pairing.Assignment, 0, len(group))
			for _, name := range group {
				members = append(members, table[name])
			}
			res.Groups = append(res.Groups, members)
		}

		if _, err := writeJSON(cfg, w, http.StatusOK, res); err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Table for seed %q to %s", res.Seed, realIP(r))
	}
}

func serveSeed(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seed, err := pairing.NewSeed(time.Now())
		if err != nil {
			errs <- err

			if _, err := writeError(cfg, w, err); err != nil {
				errs <- err
			}

			return
		}

		if _, err := writeJSON(cfg, w, http.StatusOK, SeedResponse{Seed: seed}); err != nil {
			errs <- err

			return
		}

		logf(cfg, "SEED: Generated %s for %s", seed, realIP(r))
	}
}

// shareURL points at the home page with seed filled in.
func shareURL(cfg *Config, r *http.Request, seed string) string {
	// Respect TLS and X-Forwarded-Proto if present.
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     cfg.prefix + "/",
		RawQuery: url.Values{"seed": {seed}}.Encode(),
	}

	return u.String()
}

func serveQR(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seed := strings.TrimSpace(r.URL.Query().Get("seed"))
		if seed == "" {
			http.Error(w, "missing seed", http.StatusBadRequest)

			return
		}

		png, err := qrcode.Encode(shareURL(cfg, r, seed), qrcode.Medium, qrSize)
		if err != nil {
			errs <- err
			http.Error(w, "qr generation failed", http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(cfg, w)

		if err := writeStatic(w, png); err != nil {
			errs <- err
		}
	}
}

func serveRevealWS(cfg *Config, e *pairing.Engine, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			return
		}
		defer conn.Close()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(wsIdle))

			var req revealRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			if err := rollAndReveal(cfg, e, conn, req); err != nil {
				errs <- err

				return
			}

			logf(cfg, "REVEAL: %q over websocket to %s", req.Name, realIP(r))
		}
	}
}

// rollAndReveal computes the reveal up front, then streams dice frames for
// the configured duration before sending it. The frames never depend on the
// result.
func rollAndReveal(cfg *Config, e *pairing.Engine, conn *websocket.Conn, req revealRequest) error {
	res, err := e.Reveal(req.Name, req.Seed)
	if err != nil {
		return writeWS(conn, ErrorMessage{Type: "error", Message: err.Error()})
	}

	if cfg.rollDuration > 0 {
		ticker := time.NewTicker(rollInterval)
		defer ticker.Stop()

		done := time.After(cfg.rollDuration)

	roll:
		for {
			select {
			case <-ticker.C:
				face := diceFaces[rand.Intn(len(diceFaces))]
				if err := writeWS(conn, RollMessage{Type: "roll", Face: face}); err != nil {
					return err
				}
			case <-done:
				break roll
			}
		}
	}

	return writeWS(conn, RevealMessage{Type: "reveal", Reveal: res})
}

func writeWS(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(timeout))

	return conn.WriteJSON(v)
}

func registerReveal(cfg *Config, e *pairing.Engine, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+"/reveal", serveReveal(cfg, e, errs))

	mux.GET(cfg.prefix+"/reveal/ws", serveRevealWS(cfg, e, errs))

	mux.GET(cfg.prefix+"/table", serveTable(cfg, e, errs))

	mux.GET(cfg.prefix+"/seed", serveSeed(cfg, errs))

	mux.GET(cfg.prefix+"/qr", serveQR(cfg, errs))
}
