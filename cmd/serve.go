package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/desmidi/artifact"
	"github.com/jsphweid/desmidi/collapse"
	"github.com/jsphweid/desmidi/constants"
	"github.com/jsphweid/desmidi/model"
	"github.com/jsphweid/desmidi/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var songsRoot = "."

// SetSongsRoot overrides the serve root. The e2e tests use it to point
// the handlers at a scratch folder.
func SetSongsRoot(dir string) {
	songsRoot = dir
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [root-folder]",
	Short: "Serves exported songs over HTTP",
	Long:  `Serves the exported song folders under root-folder (default .) over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			fatal("Usage: desmidi serve [root-folder]")
		}
		if len(args) == 1 {
			songsRoot = args[0]
		}
		serve()
	},
}

// a song is any direct child folder that contains data.json
func findSongs() ([]string, error) {
	entries, err := os.ReadDir(songsRoot)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if util.PathExists(filepath.Join(songsRoot, entry.Name(), constants.DataFilename)) {
			res = append(res, entry.Name())
		}
	}
	return res, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	names, err := findSongs()
	if err != nil {
		writeError(w, 500, "Could not list songs: "+err.Error())
		return
	}

	res := make([]model.SongOverview, 0)
	for _, name := range names {
		checkpoints, err := artifact.ReadSong(filepath.Join(songsRoot, name))
		if err != nil {
			continue
		}
		s := collapse.Summarize(checkpoints)
		res = append(res, model.SongOverview{
			Name:           name,
			NumCheckpoints: s.NumCheckpoints,
			DurationMS:     s.DurationMS,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGetSong(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	checkpoints, err := artifact.ReadSong(filepath.Join(songsRoot, name))
	if err != nil {
		writeError(w, 404, "No such song: "+name)
		return
	}

	res := model.SongResponse{Name: name, Checkpoints: make([]model.CheckpointJSON, 0)}
	for _, cp := range checkpoints {
		res.Checkpoints = append(res.Checkpoints, model.CheckpointJSON{
			OffsetMS: cp.OffsetMS,
			Notes:    cp.Notes,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGetFormulas(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	path := filepath.Join(songsRoot, name, constants.FormulasFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		writeError(w, 404, "No formulas for song: "+name)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(data)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleGetSong).Methods("GET")
	router.HandleFunc("/songs/{name}/formulas", HandleGetFormulas).Methods("GET")
	return router
}

func serve() {
	if !util.PathExists(songsRoot) {
		fatal("Error: folder %v not found", songsRoot)
	}

	handler := cors.Default().Handler(NewRouter())
	server := &http.Server{
		Addr:         constants.ServeAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	fmt.Printf("Serving songs from %v on %v\n", songsRoot, constants.ServeAddr)
	log.Fatal(server.ListenAndServe())
}
