package httpx

import "net/http"

// Health handles GET/HEAD /healthz. It reports process liveness only;
// dependency health is visible in logs, not here.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
