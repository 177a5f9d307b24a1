package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicEventRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/criteria", handler.ListCriteriaByEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/leaderboard", handler.GetLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedResultRoutes(mux, handler, verifier)
	registerAuthorizedProjectRoutes(mux, handler, verifier)
	registerAuthorizedEvaluationRoutes(mux, handler, verifier)
}

func registerAuthorizedResultRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/events/{eventID}/results/publish", RequireAuth(verifier, http.HandlerFunc(handler.PublishResults)))
	mux.Handle("POST /v1/events/{eventID}/results/republish", RequireAuth(verifier, http.HandlerFunc(handler.RepublishResults)))
	mux.Handle("GET /v1/events/{eventID}/scores/preview", RequireAuth(verifier, http.HandlerFunc(handler.PreviewScores)))
	mux.Handle("GET /v1/events/{eventID}/audits", RequireAuth(verifier, http.HandlerFunc(handler.ListAuditsByEvent)))
}

func registerAuthorizedProjectRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/projects/{projectID}/submit", RequireAuth(verifier, http.HandlerFunc(handler.SubmitProject)))
	mux.Handle("POST /v1/projects/{projectID}/force-unlock", RequireAuth(verifier, http.HandlerFunc(handler.ForceUnlockProject)))
	mux.Handle("POST /v1/projects/{projectID}/lock", RequireAuth(verifier, http.HandlerFunc(handler.LockProject)))
}

func registerAuthorizedEvaluationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/projects/{projectID}/evaluation", RequireAuth(verifier, http.HandlerFunc(handler.SaveEvaluation)))
	mux.Handle("GET /v1/projects/{projectID}/evaluation", RequireAuth(verifier, http.HandlerFunc(handler.GetMyEvaluation)))
}
