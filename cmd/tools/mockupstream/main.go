package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/falconsystemsai/UOA/pkg/utils"
)

// Mock upstream provider for local development: serves generator output in
// the provider's envelope so the proxy can run without a real API token
// counterpart. Point UPSTREAM_BASE_URL at this server.

func main() {
	generator := utils.NewActivityGenerator()

	http.HandleFunc("/v1/uoa", func(w http.ResponseWriter, r *http.Request) {
		count := 25
		if v, err := strconv.Atoi(r.URL.Query().Get("pagesize")); err == nil && v > 0 {
			count = v
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": generator.GenerateRawRecords(count),
		})
	})

	log.Println("Mock upstream listening on :9090")
	log.Fatal(http.ListenAndServe(":9090", nil))
}
