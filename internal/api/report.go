package api

import (
	"html/template"
	"net/http"
	"sort"
)

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>quizd session report</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #f0f0f0; }
.meta { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Session report</h1>
<p class="meta">Session {{.SessionID}} &middot; {{.BankSize}} questions in the bank</p>
{{if .Players}}
<table>
<tr><th>Player</th><th>Correct</th><th>Answered</th></tr>
{{range .Players}}
<tr><td>{{.ID}}</td><td>{{.Score}}</td><td>{{.Answered}}</td></tr>
{{end}}
</table>
{{else}}
<p>No answers submitted yet.</p>
{{end}}
</body>
</html>
`))

type reportPlayer struct {
	ID       string
	Score    int
	Answered int
}

type reportData struct {
	SessionID string
	BankSize  int
	Players   []reportPlayer
}

// handleReport renders a human-readable scoreboard for the session.
func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	sess := s.engine.Session()

	ids := sess.Players()
	sort.Strings(ids)

	data := reportData{
		SessionID: sess.ID(),
		BankSize:  s.engine.Bank().Len(),
	}
	for _, id := range ids {
		score, answered := sess.Score(id)
		data.Players = append(data.Players, reportPlayer{ID: id, Score: score, Answered: answered})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := reportTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
