package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/db"
	"github.com/jsphweid/jianpu/jianpu"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/musicxml"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// melodies kept for download, oldest dropped first
const maxCachedMelodies = 64

var (
	serveAddr    string
	serveArchive bool
	serveOpts    convertOptions
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.DefaultAddr, "listen address")
	serveCmd.Flags().BoolVar(&serveArchive, "archive", false, "store every conversion in DynamoDB")
	serveCmd.Flags().IntVar(&serveOpts.measuresPerLine, "measures-per-line", 0, "default measures per line")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long:  `Serves POST /convert (MusicXML body) and GET /convert/{id}/melody.mid`,
	Run: func(cmd *cobra.Command, args []string) {
		var archive *db.Archive
		if serveArchive {
			var err error
			if archive, err = db.Connect(); err != nil {
				log.Fatal(err)
			}
		}
		s := NewServer(serveOpts.withEnv().measuresPerLine, archive)
		log.Printf("Listening on %v", serveAddr)
		log.Fatal(http.ListenAndServe(serveAddr, s.Handler()))
	},
}

type Server struct {
	measuresPerLine int
	archive         *db.Archive

	mu       sync.Mutex
	melodies map[string]model.Melody
	order    []string
}

func NewServer(measuresPerLine int, archive *db.Archive) *Server {
	return &Server{
		measuresPerLine: measuresPerLine,
		archive:         archive,
		melodies:        make(map[string]model.Melody),
	}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", s.HandleConvert).Methods("POST")
	router.HandleFunc("/convert/{id}/melody.mid", s.HandleMelody).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	}).Methods("GET")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func parseParts(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var res []int
	for _, field := range strings.Split(raw, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad part index %q", field)
		}
		res = append(res, idx)
	}
	return res, nil
}

func (s *Server) formatOptions(r *http.Request) (jianpu.Options, error) {
	opts := jianpu.Options{MeasuresPerLine: s.measuresPerLine}
	q := r.URL.Query()
	if raw := q.Get("measures_per_line"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return opts, fmt.Errorf("bad measures_per_line %q", raw)
		}
		opts.MeasuresPerLine = n
	}
	parts, err := parseParts(q.Get("parts"))
	if err != nil {
		return opts, err
	}
	opts.Parts = parts
	return opts, nil
}

func (s *Server) HandleConvert(w http.ResponseWriter, r *http.Request) {
	opts, err := s.formatOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	score, err := musicxml.Decode(http.MaxBytesReader(w, r.Body, constants.MaxScoreSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := jianpu.Convert(*score, opts)
	if err != nil {
		var invalid *model.InvalidInputError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusUnprocessableEntity, err)
		} else {
			writeError(w, http.StatusBadRequest, err)
		}
		return
	}

	c := newConversion(score.Title, res)
	s.storeMelody(c.Id, res.Melody())
	if s.archive != nil {
		if err := s.archive.Put(c); err != nil {
			log.Printf("Could not archive %v: %v", c.Id, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ConvertResponse{Id: c.Id, Text: c.Text})
}

func (s *Server) HandleMelody(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	melody, ok := s.melodies[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no melody for %v", id))
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	if err := midi.WriteMelody(w, melody, ""); err != nil {
		log.Printf("Could not send melody %v: %v", id, err)
	}
}

func (s *Server) storeMelody(id string, melody model.Melody) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.melodies[id] = melody
	s.order = append(s.order, id)
	for len(s.order) > maxCachedMelodies {
		delete(s.melodies, s.order[0])
		s.order = s.order[1:]
	}
}
