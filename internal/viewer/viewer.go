// Package viewer serves a computed schedule plan over HTTP for browsing.
package viewer

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"

	"github.com/veenaghorakavi/SampleScheduler/internal/planner"
	"github.com/veenaghorakavi/SampleScheduler/internal/reporter"
)

//go:embed index.html
var indexHTML []byte

type server struct {
	rpt *reporter.Reporter
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *server) handlePlanJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.rpt.JSON()
	if err != nil {
		http.Error(w, "marshal plan: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *server) handlePlanDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	s.rpt.WriteDOT(w)
}

func newHandler(plan *planner.Plan) http.Handler {
	srv := &server{rpt: reporter.New(plan)}

	mux := http.NewServeMux()
	mux.HandleFunc("/plan.json", srv.handlePlanJSON)
	mux.HandleFunc("/plan.dot", srv.handlePlanDOT)
	mux.HandleFunc("/", srv.handleIndex)
	return mux
}

// Start launches the viewer HTTP server in the background and returns its
// base URL. Port 0 picks a free port.
func Start(plan *planner.Plan, port int) (string, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return "", fmt.Errorf("listen on port %d: %w", port, err)
	}

	go http.Serve(ln, newHandler(plan))

	addr := fmt.Sprintf("http://localhost:%d", ln.Addr().(*net.TCPAddr).Port)
	return addr, nil
}
