package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"todo-backend/internal/config"
	"todo-backend/internal/db"
	"todo-backend/internal/todos"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	store, err := todos.NewStore(database, cfg.Driver)
	if err != nil {
		log.Fatal("❌ ", err)
	}
	if err := store.Init(context.Background()); err != nil {
		log.Fatal("❌ Failed to create schema:", err)
	}

	log.Printf("✅ Connected to %s store", cfg.Driver)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	listTodos := todos.ListHandler(store)
	createTodo := todos.CreateHandler(store)
	deleteTodo := todos.DeleteHandler(store)

	// ----- TODOS API -----
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listTodos(w, r)
		case http.MethodPost:
			createTodo(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/todos/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleteTodo(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
