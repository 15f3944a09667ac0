// mockapi is a development stand-in for the Kisan Saathi REST API: canned
// orders, categories and products plus a login that accepts one fixed
// credential pair. Run it next to the dashboard when the real backend is
// not around.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

type order struct {
	ID              string         `json:"_id"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"totalAmount"`
	Notes           string         `json:"notes,omitempty"`
	ShippingAddress map[string]any `json:"shippingAddress"`
	Items           []map[string]any `json:"items"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	identifier := flag.String("identifier", "admin@kisansaathi.test", "accepted login identifier")
	password := flag.String("password", "admin123", "accepted login password")
	flag.Parse()

	var mu sync.Mutex
	orders := seedOrders()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Identifier, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Identifier != *identifier || in.Password != *password {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"accessToken": "mock-token",
			"user": map[string]string{
				"id": "u1", "name": "Mock Admin", "email": in.Identifier, "role": "admin",
			},
		})
	})

	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	mux.HandleFunc("GET /api/admin/orders/all", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
	})

	mux.HandleFunc("PUT /api/admin/orders/update/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/update/")
		var in struct{ Status, Notes string }
		_ = json.NewDecoder(r.Body).Decode(&in)

		mu.Lock()
		defer mu.Unlock()
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = in.Status
				if in.Notes != "" {
					orders[i].Notes = in.Notes
				}
				orders[i].UpdatedAt = time.Now()
				writeJSON(w, http.StatusOK, map[string]any{"order": orders[i]})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Order not found"})
	})

	mux.HandleFunc("GET /api/admin/products/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"name": "Seeds", "count": 2},
			{"name": "Tools", "count": 1},
		}})
	})

	products := seedProducts()
	mux.HandleFunc("GET /api/admin/products/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": products})
	})
	mux.HandleFunc("GET /api/admin/products/category/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/admin/products/category/")
		var out []map[string]any
		for _, p := range products {
			if p["category"] == name {
				out = append(out, p)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": out})
	})

	mux.HandleFunc("POST /api/admin/products/add", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid payload"})
			return
		}
		in["_id"] = fmt.Sprintf("mock%d", time.Now().UnixNano())
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": in})
	})

	mux.HandleFunc("POST /api/admin/products/upload-image", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"result":  map[string]string{"url": fmt.Sprintf("https://images.kisansaathi.test/%d.jpg", time.Now().UnixNano())},
		})
	})

	log.Printf("mock Kisan Saathi API on %s (login %s / %s)", *addr, *identifier, *password)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func seedOrders() []order {
	now := time.Now()
	return []order{
		{
			ID: "68123abcd4f2a1", Status: "Pending", TotalAmount: 1250,
			ShippingAddress: map[string]any{"name": "Ramesh Kumar", "phone": "9876543210", "city": "Nashik", "state": "Maharashtra", "pincode": "422001"},
			Items:           []map[string]any{{"productName": "Tomato Seeds", "quantity": 2, "price": 625}},
			CreatedAt:       now.AddDate(0, 0, -2), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: "68123abcd9b8c7", Status: "Shipped", TotalAmount: 4800,
			ShippingAddress: map[string]any{"name": "Sita Devi", "phone": "9123456780", "city": "Patna", "state": "Bihar", "pincode": "800001"},
			Items:           []map[string]any{{"productName": "Drip Irrigation Kit", "quantity": 1, "price": 4800}},
			CreatedAt:       now.AddDate(0, 0, -10), UpdatedAt: now.AddDate(0, 0, -4),
		},
	}
}

func seedProducts() []map[string]any {
	return []map[string]any{
		{"_id": "p1", "productName": "Tomato Seeds", "description": "Hybrid tomato seeds", "productType": "seed", "category": "Seeds", "price": 625, "stockQuantity": 40, "image1": "https://images.kisansaathi.test/p1.jpg"},
		{"_id": "p2", "productName": "Wheat Seeds", "description": "High yield wheat", "productType": "seed", "category": "Seeds", "price": 410, "stockQuantity": 120, "image1": "https://images.kisansaathi.test/p2.jpg"},
		{"_id": "p3", "productName": "Hand Trowel", "description": "Steel hand trowel", "productType": "tool", "category": "Tools", "price": 260, "stockQuantity": 15, "image1": "https://images.kisansaathi.test/p3.jpg"},
	}
}
